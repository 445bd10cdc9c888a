/*
Package arca defines the common interfaces that weave together the
extensions of this repository: transactions and messages, handlers and
decorators, the key-value store abstraction, and the context helpers
used to pass block information into handlers.

The business logic lives in the x/... packages. The central one is
x/deposit, which implements custody of funds bound to a concealed
beneficiary: assets are held until released either by the beneficiary
calling in person or by any relayer presenting a beneficiary-signed,
time-bounded permit.

We pass context.Context between app, middleware and handlers. Common
keys store block height, block time, chain id and the logger. There
exist two functions for every XYZ of type T supported in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) T
*/
package arca
