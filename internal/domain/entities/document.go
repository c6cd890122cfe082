package entities

import "time"

// Document is a PDF owned by a citizen. PDFData marshals to base64 in JSON.
type Document struct {
	ID        uint      `json:"document_id"`
	CitizenID uint      `json:"citizen_id"`
	Type      string    `json:"type"`
	PDFData   []byte    `json:"pdf_data"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadDocumentInput carries the document as base64 text.
type UploadDocumentInput struct {
	Username string `json:"User_name" binding:"required"`
	Type     string `json:"Type" binding:"required,max=100"`
	PDFData  string `json:"Pdf_data" binding:"required"`
}
