package repository

// Storage keys. Existing data written under these names stays readable.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"

	actionItemsPrefix = "actionItems_"
)

// ActionItemsKey is the key holding the checklist for one account.
func ActionItemsKey(email string) string {
	return actionItemsPrefix + email
}
