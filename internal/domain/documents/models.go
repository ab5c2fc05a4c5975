package documents

import "time"

const (
	KindContract      = "Contract"
	KindDiploma       = "Diploma"
	KindCertificate   = "Certificate"
	KindServiceRecord = "ServiceRecord"
	KindOther         = "Other"
)

var Kinds = []string{KindContract, KindDiploma, KindCertificate, KindServiceRecord, KindOther}

// Document is stored file metadata; the bytes live in object storage
// under StorageKey.
type Document struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	FileSize    int64     `json:"fileSize"`
	StorageKey  string    `json:"storageKey"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
