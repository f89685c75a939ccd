package request

type RecordStorageRequest struct {
	StorageUsedGB *float64 `json:"storage_used_gb" binding:"required"`
}
