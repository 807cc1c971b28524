/*
Package x contains the marketplace extensions

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `nft.IssueTokenMsg` in place of `nft.NftIssueTokenMsg`.
*/
package x
