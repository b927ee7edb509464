// Package basesvc - Test chế độ degraded khi collection là nil.
package basesvc

import (
	"context"
	"errors"
	"testing"

	"meta_creatives/internal/common"
)

type testDoc struct {
	Name string `bson:"name"`
}

func TestNilCollection_TraVeLoiKetNoi(t *testing.T) {
	svc := NewBaseServiceMongo[testDoc](nil)
	ctx := context.Background()

	if _, err := svc.InsertOne(ctx, testDoc{Name: "a"}); !errors.Is(err, common.ErrConnection) {
		t.Errorf("InsertOne phải trả về ErrConnection, nhận được %v", err)
	}
	if _, err := svc.Find(ctx, nil, nil); !errors.Is(err, common.ErrConnection) {
		t.Errorf("Find phải trả về ErrConnection, nhận được %v", err)
	}
}

func TestErrConnection_La500(t *testing.T) {
	var customErr *common.Error
	if !errors.As(common.ErrConnection, &customErr) {
		t.Fatal("ErrConnection phải là *common.Error")
	}
	if customErr.StatusCode != common.StatusInternalServerError {
		t.Errorf("ErrConnection phải map về 500, nhận được %d", customErr.StatusCode)
	}
}
