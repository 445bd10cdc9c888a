/*
Package errors implements custom error interfaces for arca.

The package is a fork of the upstream weave errors package idea: a
small set of root errors is registered with a unique code, and all
runtime errors wrap one of the roots. This allows error tests via the
Is method and returning errors to the caller in a safe, classified
manner, without leaking internals.

Create root errors only with Register. Create runtime errors with Wrap
and Wrapf so that a stack trace is attached exactly once, at the lowest
frame.
*/
package errors
