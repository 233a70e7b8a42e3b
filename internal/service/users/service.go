// Package users lists the people who have logged transactions.
package users

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

type nameSource interface {
	ListUserNames(ctx context.Context, table string) ([]string, error)
}

// Service provides the user directory.
type Service struct {
	names nameSource
	table string
	log   *slog.Logger
}

// NewService creates a user directory reading names from table.
func NewService(log *slog.Logger, names nameSource, table string) *Service {
	return &Service{
		names: names,
		table: table,
		log:   log.With("service", "users"),
	}
}

// ListUsers returns the distinct non-empty user names, sorted
// case-insensitively. Names differing only in case are both kept and ordered
// by byte value, so "Alice" precedes "alice". Every call reads storage.
func (s *Service) ListUsers(ctx context.Context) ([]string, error) {
	raw, err := s.names.ListUserNames(ctx, s.table)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	users := make([]string, 0, len(raw))
	for _, name := range raw {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		users = append(users, name)
	}

	slices.SortFunc(users, compareNames)

	s.log.DebugContext(ctx, "users listed", slog.Int("count", len(users)), slog.Int("rows", len(raw)))
	return users, nil
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
