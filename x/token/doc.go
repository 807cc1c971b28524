/*
Package token implements the fungible currency of the marketplace.

Every address can claim a one time faucet grant of the configured
currency. Wallets support direct transfers as well as delegated
transfers through allowances, so that the market extension can move
funds on behalf of a buyer.
*/
package token
