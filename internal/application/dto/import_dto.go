package dto

// ImportRequest carries the uploaded workbook: {"file": "<base64 xlsx>"}.
type ImportRequest struct {
	File string `json:"file"`
}

// ImportResponse reports aggregate reconciliation counts. Total is always
// Inserted + Updated; skipped rows contribute to neither.
type ImportResponse struct {
	Success  bool `json:"success"`
	Inserted int  `json:"inserted"`
	Updated  int  `json:"updated"`
	Total    int  `json:"total"`
}
