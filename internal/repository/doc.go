// Package repository provides the claim case storage contract and its two
// implementations: an in-memory store with full read/write support and a
// read-only store that imports cases from an Excel workbook on every read.
package repository
