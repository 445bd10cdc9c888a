/*
Package x contains some standard extensions

Extensions implement common functionality (deposit custody, token
wallets) and can be combined together to construct an application.

Each extension should be designed as a stand-alone package with clearly
defined API, with no dependencies on other extensions. The application
wires them together through interfaces like Authenticator, which allows
cross-extension functionality without hard-coding the source.
*/
package x
