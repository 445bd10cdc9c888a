/*
Package deposit implements custodial escrow with concealed
beneficiaries.

Anyone can place funds in custody bound to a commitment, the one-way
digest of the beneficiary address. The beneficiary stays unknown until
release time, when it is revealed by the act of releasing: either the
beneficiary itself sends a ReleaseMsg, or it signs a time-bounded
Permit that any relayer can submit. Each deposit is released exactly
once and the record is kept forever.

All custodied funds sit in a pool wallet controlled by the extension
itself. The configured owner can sweep pool balances and hand
ownership over in two phases.
*/
package deposit
