package storage

import (
	"context"
	"fmt"

	"travelbook/internal/database"
)

const (
	DriverMemory = "memory"
	DriverSQL    = "sql"
	DriverRedis  = "redis"
	DriverS3     = "s3"
	DriverFile   = "file"
)

type Options struct {
	Driver string

	DatabaseURL string
	RedisURL    string
	KeyPrefix   string
	S3Bucket    string
	AWSRegion   string
	Dir         string
}

// Open builds the adapter selected by opts.Driver. The returned close
// function releases any connection the adapter holds and is never nil.
func Open(ctx context.Context, opts Options) (Adapter, func() error, error) {
	noop := func() error { return nil }

	switch opts.Driver {
	case DriverMemory, "":
		return NewMemory(), noop, nil

	case DriverFile:
		a, err := NewFile(opts.Dir)
		if err != nil {
			return nil, noop, err
		}
		return a, noop, nil

	case DriverSQL:
		db, err := database.Connect(opts.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: connect: %w", ErrBackend, err)
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		a, err := NewSQL(db)
		if err != nil {
			_ = closeDB()
			return nil, noop, err
		}
		return a, closeDB, nil

	case DriverRedis:
		client, err := DialRedis(ctx, opts.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return NewRedis(client, opts.KeyPrefix), client.Close, nil

	case DriverS3:
		client, err := NewS3Client(opts.AWSRegion)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", ErrBackend, err)
		}
		return NewS3(client, opts.S3Bucket, opts.KeyPrefix), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", opts.Driver)
}
