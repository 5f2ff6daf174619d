package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"percentCalc/internal/domain"
	"percentCalc/internal/ports"
)

var _ ports.ICallHistoryRepository = (*CallHistoryRepo)(nil)

// callDoc — документ в коллекции call_history. seq — монотонный номер записи
// (аналог SERIAL в PG): по нему сортируется история и заполняется domain ID.
type callDoc struct {
	Seq             int64     `bson:"seq"`
	Date            time.Time `bson:"date"`
	Endpoint        string    `bson:"endpoint"`
	Parameters      string    `bson:"parameters"`
	ResponseOrError string    `bson:"response_or_error"`
}

// CallHistoryRepo реализует ports.ICallHistoryRepository для MongoDB.
type CallHistoryRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCallHistoryRepo возвращает репозиторий истории вызовов.
func NewCallHistoryRepo(client *Client, log *slog.Logger) *CallHistoryRepo {
	return &CallHistoryRepo{client: client, log: log}
}

// nextSeq выдаёт следующий номер записи через счётчик в служебной коллекции
// (findOneAndUpdate с $inc — атомарно).
func (r *CallHistoryRepo) nextSeq(ctx context.Context) (int64, error) {
	counters := r.client.Database(r.client.cfg.Database).Collection("counters")
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": r.client.cfg.Collection},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}

// SaveCall добавляет запись аудита в коллекцию.
func (r *CallHistoryRepo) SaveCall(ctx context.Context, rec domain.CallRecord) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		r.log.Debug("SaveCall seq failed", "error", err)
		return err
	}
	doc := callDoc{
		Seq:             seq,
		Date:            rec.Date,
		Endpoint:        rec.Endpoint,
		Parameters:      rec.Parameters,
		ResponseOrError: rec.ResponseOrError,
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveCall failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает страницу записей по возрастанию seq и общее число записей.
func (r *CallHistoryRepo) GetHistory(ctx context.Context, page, size int) ([]domain.CallRecord, int64, error) {
	coll := r.client.Coll()

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.log.Debug("GetHistory count failed", "error", err)
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "seq", Value: 1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []callDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	list := make([]domain.CallRecord, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.CallRecord{
			ID:              d.Seq,
			Date:            d.Date,
			Endpoint:        d.Endpoint,
			Parameters:      d.Parameters,
			ResponseOrError: d.ResponseOrError,
		})
	}
	return list, total, nil
}

// Ping проверяет доступность БД.
func (r *CallHistoryRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
