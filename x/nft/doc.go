/*
Package nft implements the non fungible tokens of the marketplace.

Tokens are minted permissionlessly and identified by a monotonically
growing sequence value. Every token carries an immutable metadata URI, a
current owner and at most one approved spender that may transfer it on
the owner's behalf.
*/
package nft
