/*
Package market implements an exchange for non fungible tokens.

A token owner that approved the exchange can list the token for a price
in the marketplace currency. Anybody else can buy it, paying through an
allowance granted to the exchange. A sale moves the payment to the
seller, a configured fee cut to the fee collector and the token to the
buyer, all within a single transaction. Listings that were bought or
cancelled are deleted.
*/
package market
