package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleOperator UserRole = "operator"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOperator, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDataset    EntityType = "DATASET"
	EntityTypeTag        EntityType = "TAG"
	EntityTypeSentence   EntityType = "SENTENCE"
	EntityTypePermission EntityType = "PERMISSION"
	EntityTypeOperator   EntityType = "OPERATOR"
	EntityTypeUser       EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDataset, EntityTypeTag, EntityTypeSentence,
		EntityTypePermission, EntityTypeOperator, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
