/*
Package mart defines all common interfaces that tie together the token,
nft and market extensions into one application, as well as implementations
of some of the simpler components (when interfaces would be too much
overhead).

We pass context.Context between app, middleware and handlers. To do so,
mart defines some common keys to store info, such as block height and
chain id. Each extension, such as sigs, may add its own keys to enrich
the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package mart
