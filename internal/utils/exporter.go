package utils

import (
	"fmt"

	"github.com/vinhyan/midland-library/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		// change with actual calls
		fmt.Println(entry.Timestamp, entry.Action, entry.CardNum, entry.Data)
	}
	return nil
}
