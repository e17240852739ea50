package service

import "homework-bot/internal/domain"

type StatusChanges interface {
	Start()
	Stop() error
	Snapshot() domain.PollSnapshot
}
