package domain

// AddressRecord is a single exported row: the primary email address of one
// mailbox. Records are collected into ordered slices; the upstream directory
// sorts by display name and that order is preserved through export and split.
type AddressRecord struct {
	// EmailAddress is the mailbox's primary SMTP address.
	EmailAddress string
}
