package domain

import "time"

// PollState — состояние цикла опроса: курсор from_date и последнее
// успешно доставленное уведомление. Живёт только в памяти процесса,
// при рестарте собирается заново.
type PollState struct {
	Cursor        int64
	LastDelivered string
}

type PollSnapshot struct {
	State       PollState
	LastCheckAt time.Time
	LastError   string
}
