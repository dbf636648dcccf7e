// Package folio records buy transactions for crypto and equity assets across
// trading venues, and derives cost-basis and profit/loss reports from them.
//
// The ledger is the system of record: an append-only collection of purchases,
// each identified by a short stable ID. Reports are never persisted; every
// report request re-reads the ledger, aggregates positions per (platform,
// symbol), fetches live prices from each venue's public endpoint, and derives
// market value and PnL. A venue outage downgrades the affected rows to
// "unavailable" instead of aborting the report.
package folio
