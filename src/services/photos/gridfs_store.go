package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChunkSize bounds both the GridFS chunk size and each stream write.
const ChunkSize = 255 * 1024

type GridFSStore struct {
	db         *mongo.Database
	bucketName string
}

func NewGridFSStore(db *mongo.Database, bucketName string) *GridFSStore {
	return &GridFSStore{db: db, bucketName: bucketName}
}

// A gridfs.Bucket keeps per-bucket buffers, so one is opened per call.
func (g *GridFSStore) bucket() (*gridfs.Bucket, error) {
	return gridfs.NewBucket(g.db, options.GridFSBucket().SetName(g.bucketName))
}

func (g *GridFSStore) Upload(ctx context.Context, filename string, meta ObjectMeta, data []byte) (string, error) {
	bucket, err := g.bucket()
	if err != nil {
		return "", err
	}

	opts := options.GridFSUpload().
		SetChunkSizeBytes(ChunkSize).
		SetMetadata(bson.M{
			"contentType":  meta.ContentType,
			"originalName": meta.OriginalName,
			"userFullName": meta.UserFullName,
			"userTelegram": meta.UserTelegram,
			"timestamp":    meta.Timestamp,
		})

	stream, err := bucket.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("open upload stream: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	if err := writeChunks(stream, data, ChunkSize); err != nil {
		_ = stream.Abort()
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := stream.Close(); err != nil {
		_ = stream.Abort()
		return "", fmt.Errorf("finish %s: %w", filename, err)
	}

	oid, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(stream.FileID), nil
	}
	return oid.Hex(), nil
}

func (g *GridFSStore) Download(ctx context.Context, id string) ([]byte, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPhotoNotFound
	}

	bucket, err := g.bucket()
	if err != nil {
		return nil, err
	}

	stream, err := bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	defer stream.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return nil, fmt.Errorf("read photo %s: %w", id, err)
	}
	return buf.Bytes(), nil
}

// writeChunks feeds data to w at most size bytes per Write.
func writeChunks(w io.Writer, data []byte, size int) error {
	for offset := 0; offset < len(data); offset += size {
		end := offset + size
		if end > len(data) {
			end = len(data)
		}
		if _, err := w.Write(data[offset:end]); err != nil {
			return err
		}
	}
	return nil
}
