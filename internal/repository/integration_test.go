package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCheckInsIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	ctx := context.Background()
	dbCfg := setupCheckInsTestDB(t)
	pool, err := repository.Connect(ctx, dbCfg)
	require.NoError(t, err)
	defer pool.Close()

	users := repository.NewUsersRepoWithConn(pool)
	checkIns := repository.NewCheckInsRepoWithConn(pool)

	uid, err := users.Create(ctx, &entity.User{Name: "test_user", Email: "test_user@qq.com"})
	require.NoError(t, err)
	day := time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC)

	t.Run("concurrent inserts store one record", func(t *testing.T) {
		const workers = 16
		results := make([]repository.InsertResult, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i], errs[i] = checkIns.InsertIfAbsent(ctx, uid, day, 0)
			}(i)
		}
		close(start)
		wg.Wait()

		inserted := 0
		for i := range results {
			require.NoError(t, errs[i])
			if results[i] == repository.Inserted {
				inserted++
			}
		}
		assert.Equal(t, 1, inserted)
		count, err := checkIns.CountByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
	t.Run("dates ascending", func(t *testing.T) {
		_, err := checkIns.InsertIfAbsent(ctx, uid, day.AddDate(0, 0, -3), 0)
		require.NoError(t, err)
		dates, err := checkIns.ListDates(ctx, uid)
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.True(t, dates[0].Before(dates[1]))

		latest, err := checkIns.LatestDate(ctx, uid)
		require.NoError(t, err)
		assert.True(t, latest.Equal(day))
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := checkIns.InsertIfAbsent(ctx, uuid.New(), day, 0)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("deleting user removes check-ins", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, uid))
		count, err := checkIns.CountByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupCheckInsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("checkin"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}
