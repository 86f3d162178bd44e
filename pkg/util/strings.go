package util

// TruncateID shortens long identifiers for log readability. Identifiers
// over 20 characters keep their first and last three characters joined by
// an ellipsis; shorter ones are returned unchanged.
func TruncateID(id string) string {
	if len(id) <= 20 {
		return id
	}
	return id[:3] + "..." + id[len(id)-3:]
}
