package sqldump

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

func TestFileSource_LoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.sql")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	doc, err := NewFileSource(path, logger.NewNop()).LoadDocument(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Rooms, 2)
	assert.Len(t, doc.ClassInfo, 1)
	assert.Len(t, doc.Schedules, 2)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.sql"), logger.NewNop())

	_, err := src.LoadDocument(context.Background())
	assert.ErrorIs(t, err, ErrRead)
}
