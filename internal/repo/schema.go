package repo

const (
	tableIssuedPasses = "issued_passes"
)

const (
	colID        = "id"
	colObjectID  = "object_id"
	colClassID   = "class_id"
	colIssuer    = "issuer"
	colSaveURL   = "save_url"
	colToken     = "token"
	colCreatedAt = "created_at"
)
