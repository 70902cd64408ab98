package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awardvote/internal/models"
	"awardvote/internal/voting"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

func TestNow(t *testing.T) {
	s, mock := newStoreWithMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`^SELECT NOW\(\)$`).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(now))

	got, err := s.Now(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestGetSetting(t *testing.T) {
	s, mock := newStoreWithMock(t)
	q := `^SELECT value FROM settings WHERE key = \$1$`

	mock.ExpectQuery(q).WithArgs("voting_open").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("false"))
	v, found, err := s.GetSetting(context.Background(), models.SettingVotingOpen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", v)

	mock.ExpectQuery(q).WithArgs("results_published").WillReturnError(sql.ErrNoRows)
	_, found, err = s.GetSetting(context.Background(), models.SettingResultsPublished)
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery(q).WithArgs("voting_open").WillReturnError(errors.New("db down"))
	_, _, err = s.GetSetting(context.Background(), models.SettingVotingOpen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestPutSetting(t *testing.T) {
	s, mock := newStoreWithMock(t)
	mock.ExpectExec(`^INSERT INTO settings \(key,value,updated_at\) VALUES \(\$1,\$2,NOW\(\)\) ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("results_published", "true").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.PutSetting(context.Background(), models.SettingResultsPublished, "true"))
}

func TestCatalogRows(t *testing.T) {
	s, mock := newStoreWithMock(t)
	cols := []string{
		"nomination_id", "nomination_title", "nomination_description", "nomination_position", "nomination_image_url",
		"nominee_id", "nominee_name", "nominee_image_url", "nominee_position",
	}
	mock.ExpectQuery(`(?s)^SELECT n\.id AS nomination_id, .* FROM nominations n LEFT JOIN nominees m ON m\.nomination_id = n\.id WHERE COALESCE\(n\.is_published, TRUE\) ORDER BY n\.position ASC, n\.id ASC, m\.position ASC, m\.id ASC$`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), "Film", "", int64(1), "f.png", int64(10), "A", "a.png", int64(1)).
			AddRow(int64(2), "Empty", "", int64(2), "", nil, nil, nil, nil))

	rows, err := s.CatalogRows(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].NomineeId)
	assert.Equal(t, int64(10), *rows[0].NomineeId)
	assert.Equal(t, "A", *rows[0].NomineeName)
	assert.Nil(t, rows[1].NomineeId)
	assert.Nil(t, rows[1].NomineePosition)
}

func TestCatalogRows_Unfiltered(t *testing.T) {
	s, mock := newStoreWithMock(t)
	mock.ExpectQuery(`LEFT JOIN nominees m ON m\.nomination_id = n\.id ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{
			"nomination_id", "nomination_title", "nomination_description", "nomination_position", "nomination_image_url",
			"nominee_id", "nominee_name", "nominee_image_url", "nominee_position",
		}))

	rows, err := s.CatalogRows(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNomineeNomination(t *testing.T) {
	s, mock := newStoreWithMock(t)
	q := `^SELECT nomination_id FROM nominees WHERE id = \$1$`

	mock.ExpectQuery(q).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"nomination_id"}).AddRow(int64(1)))
	id, err := s.NomineeNomination(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)
	_, err = s.NomineeNomination(context.Background(), 99)
	assert.ErrorIs(t, err, voting.ErrNomineeNotFound)
}

func TestUpsertVote(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO users \(id\) VALUES \(\$1\) ON CONFLICT \(id\) DO NOTHING$`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^INSERT INTO votes \(user_id,nomination_id,nominee_id\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(user_id, nomination_id\) DO UPDATE SET nominee_id = EXCLUDED\.nominee_id`).
		WithArgs("u1", int64(1), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpsertVote(context.Background(), models.Vote{UserId: "u1", NominationId: 1, NomineeId: 10})
	require.NoError(t, err)
}

func TestUpsertVote_RollsBackOnError(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO users`).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`^INSERT INTO votes`).WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := s.UpsertVote(context.Background(), models.Vote{UserId: "u1", NominationId: 1, NomineeId: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fk violation")
}

func TestDeleteVote(t *testing.T) {
	s, mock := newStoreWithMock(t)
	mock.ExpectExec(`^DELETE FROM votes WHERE user_id = \$1 AND nomination_id = \$2$`).
		WithArgs("u1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteVote(context.Background(), "u1", 1))
}

func TestUserVotes(t *testing.T) {
	s, mock := newStoreWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`^SELECT user_id, nomination_id, nominee_id, created_at, updated_at FROM votes WHERE user_id = \$1 ORDER BY nomination_id ASC$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "nomination_id", "nominee_id", "created_at", "updated_at"}).
			AddRow("u1", int64(1), int64(10), now, now).
			AddRow("u1", int64(2), int64(20), now, now))

	votes, err := s.UserVotes(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, int64(20), votes[1].NomineeId)
}

func TestTally(t *testing.T) {
	s, mock := newStoreWithMock(t)
	mock.ExpectQuery(`(?s)^SELECT v\.nomination_id, .*COUNT\(\*\) AS votes FROM votes v JOIN nominations n ON n\.id = v\.nomination_id JOIN nominees m ON m\.id = v\.nominee_id GROUP BY .* ORDER BY v\.nomination_id ASC, votes DESC, v\.nominee_id ASC$`).
		WillReturnRows(sqlmock.NewRows([]string{
			"nomination_id", "nomination_title", "nomination_position", "nominee_id", "nominee_name", "nominee_image_url", "votes",
		}).
			AddRow(int64(1), "Film", int64(1), int64(10), "A", "", int64(5)).
			AddRow(int64(1), "Film", int64(1), int64(11), "B", "", int64(5)))

	tallies, err := s.Tally(context.Background())
	require.NoError(t, err)
	require.Len(t, tallies, 2)

	winners := voting.SelectWinners(tallies)
	require.Len(t, winners, 1)
	assert.Equal(t, int64(10), winners[0].NomineeId)
}

func TestMigrate_PropagatesDBError(t *testing.T) {
	s, _ := newStoreWithMock(t)

	err := s.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run migrations")
}
