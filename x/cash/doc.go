/*
Package cash defines a simple implementation of sending coins
between multi-signature wallets.

There is no logic in the coins, except that the balance of any coin
cannot go below zero. The wallet bucket is keyed by the owner address
and every mutation goes through the Controller interface so other
extensions can move funds without knowing the storage layout.
*/
package cash
