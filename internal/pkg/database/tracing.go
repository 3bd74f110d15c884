package database

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/alphahows/hows/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一次数据库操作创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return newGormTracingPlugin(otel.GetTracerProvider().Tracer(instrumentationName))
}

func newGormTracingPlugin(tracer trace.Tracer) *GormTracingPlugin {
	return &GormTracingPlugin{tracer: tracer}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type registrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op       string
		gormName string
		before   registrar
		after    registrar
	}{
		{op: "SELECT", gormName: "query", before: cb.Query().Before("gorm:query"), after: cb.Query().After("gorm:query")},
		{op: "INSERT", gormName: "create", before: cb.Create().Before("gorm:create"), after: cb.Create().After("gorm:create")},
		{op: "UPDATE", gormName: "update", before: cb.Update().Before("gorm:update"), after: cb.Update().After("gorm:update")},
		{op: "DELETE", gormName: "delete", before: cb.Delete().Before("gorm:delete"), after: cb.Delete().After("gorm:delete")},
		{op: "RAW", gormName: "raw", before: cb.Raw().Before("gorm:raw"), after: cb.Raw().After("gorm:raw")},
	}
	for _, h := range hooks {
		if err := h.before.Register("tracing:before_"+h.gormName, p.before(h.op)); err != nil {
			return err
		}
		if err := h.after.Register("tracing:after_"+h.gormName, p.after(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		name := op
		if tbl := tableOf(db); tbl != "" {
			name = tbl + " " + op
		}
		ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if tbl := tableOf(db); tbl != "" {
			attrs = append(attrs, attribute.String("db.table", tbl))
		}
		if stmt := strings.TrimSpace(db.Statement.SQL.String()); stmt != "" {
			attrs = append(attrs, attribute.String("db.statement", stmt))
		}
		span.SetAttributes(attrs...)
		// 查不到数据是业务上的结果，不算失败
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return db.Statement.Table
}
