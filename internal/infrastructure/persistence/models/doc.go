// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Every model implements ToDomain and FromDomain so the generic repository can
// move values between the two representations.
//
// Structure:
//   - base.go: BaseModel shared by all business tables
//   - identity.go: users
//   - underwriting.go: clients, products, policies, reinsurance
//   - claims.go: claims
//   - finance.go: premiums, commissions, ledger
//   - partner.go: customers, agents
//   - records.go: documents, audit
package models
