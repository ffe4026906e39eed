package constant

const (
	// Placeholder tokens are bracketed literals such as [NAME] or [CLAIM NUMBER].
	PlaceholderTokenRegex = `\[[^\[\]]*\]`

	// Character classes kept by form sanitization (govalidator whitelist syntax).
	NameCharClass        = `\p{L} `
	ClaimNumberCharClass = "a-zA-Z0-9"
	RegionCharClass      = "a-zA-Z"
)
