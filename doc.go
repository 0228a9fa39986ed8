// Package okane analyzes and edits a personal-finance ledger stored as
// a single JSON document.
//
// A ledger is a starting balance plus a flat list of dated income and
// expense transactions in whole yen. The package computes running and
// point-in-time balances, forecasts month-end balances, checks whether
// a hypothetical expense is affordable, detects days where the balance
// falls under a threshold, compresses old history into monthly
// aggregates, and provides add/edit/delete/search editing.
//
// Everything is a synchronous scan over the in-memory transaction
// list: one process loads the file, mutates the ledger, and writes it
// back wholesale. There is no locking and no protection against
// concurrent external writers.
package okane
