package bot

import (
	"fmt"
	"os"
	"time"
)

// ReportLog 發文結果的逐行紀錄。格式是固定的外部契約：
//
//	[POSTED] Id: <id> at <時間>.
//	[FAILED] Id: <id> at <時間>.
//
// 結構化日誌另外走 zap，這個檔案只追加、不覆寫。
type ReportLog struct {
	path string
}

// NewReportLog 創建發文結果紀錄
func NewReportLog(path string) *ReportLog {
	return &ReportLog{path: path}
}

// Posted 紀錄一次成功發文
func (r *ReportLog) Posted(id string) error {
	return r.append(fmt.Sprintf("[POSTED] Id: %s at %s.\n", id, time.Now().Format(time.DateTime)))
}

// Failed 紀錄一次失敗，id 未知時以 unknown 代替
func (r *ReportLog) Failed(id string) error {
	if id == "" {
		id = "unknown"
	}
	return r.append(fmt.Sprintf("[FAILED] Id: %s at %s.\n", id, time.Now().Format(time.DateTime)))
}

// Exhausted 紀錄重試額度用盡
func (r *ReportLog) Exhausted() error {
	return r.append(fmt.Sprintf("[FAILED] Reached maximum of retries at %s.\n", time.Now().Format(time.DateTime)))
}

func (r *ReportLog) append(line string) error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write report log: %w", err)
	}
	return nil
}
