package storage

import (
	"fmt"
	"time"

	"TomatoDoctor_AIProject/internal/models"
)

// created_at은 TEXT로 고정 포맷 저장, 조회 응답 포맷과 동일해야 함
const timeLayout = "2006-01-02 15:04:05"

func AppendHistory(userID int, filename, prediction, advice, audioPath string, createdAt time.Time) error {
	stmt, err := db.Prepare("INSERT INTO history(user_id, filename, prediction, advice, audio_path, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(userID, filename, prediction, advice, audioPath, createdAt.Format(timeLayout))
	return err
}

// 오디오 산출물이 해당 사용자의 기록에 속하는지 확인
func HistoryOwnsAudio(userID int, audioPath string) (bool, error) {
	var count int
	row := db.QueryRow("SELECT COUNT(*) FROM history WHERE user_id = ? AND audio_path = ?", userID, audioPath)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// 해당 사용자의 기록만, 삽입 순서대로
func HistoryByUserID(userID int) ([]models.PredictionRecord, error) {
	query := `
		SELECT id, user_id, filename, prediction, advice, audio_path, created_at
		FROM history
		WHERE user_id = ?
		ORDER BY id ASC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		var r models.PredictionRecord
		var createdStr string

		if err := rows.Scan(&r.ID, &r.UserID, &r.Filename, &r.Prediction, &r.Advice, &r.AudioPath, &createdStr); err != nil {
			return nil, err
		}

		// 고정 포맷으로만 기록되므로 실패는 원장 손상, 묻지 않고 올림
		parsedTime, err := time.Parse(timeLayout, createdStr)
		if err != nil {
			return nil, fmt.Errorf("HistoryByUserID(): corrupt created_at %q: %w", createdStr, err)
		}
		r.CreatedAt = parsedTime

		records = append(records, r)
	}
	return records, rows.Err()
}
