package entity

// BillUpload is a bill file as handed over by the user.
type BillUpload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Size returns the file size in bytes.
func (u BillUpload) Size() int64 {
	return int64(len(u.Content))
}
