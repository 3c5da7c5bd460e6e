package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC, defaulting to ASC
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField returns sortField when it is whitelisted, otherwise defaultField
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// sortFields builds a whitelist from the base columns plus the given ones
func sortFields(columns ...string) map[string]bool {
	m := map[string]bool{"id": true, "created_at": true, "updated_at": true}
	for _, c := range columns {
		m[c] = true
	}
	return m
}

// Allowed sort fields per table
var (
	UserSortFields        = sortFields("username", "email", "role", "status")
	ClientSortFields      = sortFields("name", "email")
	ProductSortFields     = sortFields("name")
	PolicySortFields      = sortFields("policy_number", "client_id", "product_id", "start_date", "end_date", "status")
	PremiumSortFields     = sortFields("policy_id", "amount", "due_date", "paid_date")
	CommissionSortFields  = sortFields("agent_id", "amount", "date")
	ClaimSortFields       = sortFields("claim_number", "policy_id", "amount", "status", "filed_date", "settled_date")
	CustomerSortFields    = sortFields("name", "email")
	AgentSortFields       = sortFields("name", "email")
	DocumentSortFields    = sortFields("title", "uploaded_date")
	AuditSortFields       = sortFields("action", "user_name", "timestamp")
	LedgerSortFields      = sortFields("entry_date", "amount", "entry_type")
	ReinsuranceSortFields = sortFields("policy_id", "reinsurer", "coverage_amount", "start_date", "end_date")
)
