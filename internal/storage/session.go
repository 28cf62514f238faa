package storage

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Session is the process-lifetime scope. It holds serialized copies rather
// than live references so it round-trips values exactly like the durable
// scope does.
type Session struct {
	values map[string][]byte
	logger *zap.Logger
}

func NewSession(logger *zap.Logger) *Session {
	return &Session{
		values: make(map[string][]byte),
		logger: logger,
	}
}

func (s *Session) Save(key string, value any) SaveResult {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to marshal value", zap.String("key", key), zap.Error(err))
		return failed(ErrorUnknown, "failed to save data, please try again")
	}
	s.values[key] = data
	return saved()
}

func (s *Session) Load(key string, dest any) bool {
	data, ok := s.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("discarding corrupt value", zap.String("key", key), zap.Error(err))
		delete(s.values, key)
		return false
	}
	return true
}

func (s *Session) Delete(key string) SaveResult {
	delete(s.values, key)
	return saved()
}

func (s *Session) Close() error {
	s.values = make(map[string][]byte)
	return nil
}
