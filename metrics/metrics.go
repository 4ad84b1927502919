// Package metrics counts product creations in Prometheus.
package metrics

import (
	"context"
	"errors"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/go-leo/typefactory/factory"
	"github.com/go-leo/typefactory/typelist"
)

// Collector records factory activity on a Prometheus registerer.
type Collector struct {
	created *prometheus.CounterVec
	failed  *prometheus.CounterVec
}

// NewCollector registers the creation counters on reg. If reg is nil, the default registerer is
// used. Counters that are already registered are reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_products_created_total",
		Help: "Total number of products created, by abstract product and concrete type",
	}, []string{"product", "concrete"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_create_errors_total",
		Help: "Total number of failed product creations, by abstract product",
	}, []string{"product"})

	var err error
	if created, err = register(reg, created); err != nil {
		return nil, err
	}
	if failed, err = register(reg, failed); err != nil {
		return nil, err
	}
	return &Collector{created: created, failed: failed}, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

// Middleware counts every Create passing through it.
func (c *Collector) Middleware() factory.Middleware {
	return func(ctx context.Context, product reflect.Type, invoker factory.Invoker) (any, error) {
		created, err := invoker(ctx, product)
		if err != nil {
			c.failed.WithLabelValues(typelist.Name(product)).Inc()
			return nil, err
		}
		c.created.WithLabelValues(typelist.Name(product), typelist.Name(reflect.TypeOf(created).Elem())).Inc()
		return created, nil
	}
}

// Created returns how many concrete products were created for product. Reading does not create
// the series.
func (c *Collector) Created(product, concrete reflect.Type) float64 {
	return find(c.created, map[string]string{"product": typelist.Name(product), "concrete": typelist.Name(concrete)})
}

// Failed returns how many creations of product failed.
func (c *Collector) Failed(product reflect.Type) float64 {
	return find(c.failed, map[string]string{"product": typelist.Name(product)})
}

// Sample is the creation count of one product and concrete type pair.
type Sample struct {
	Product  string  `json:"product"`
	Concrete string  `json:"concrete"`
	Count    float64 `json:"count"`
}

// Snapshot returns the current creation counts sorted by product, then concrete type.
func (c *Collector) Snapshot() []Sample {
	var samples []Sample
	for _, pb := range collect(c.created) {
		labels := labelsOf(pb)
		samples = append(samples, Sample{
			Product:  labels["product"],
			Concrete: labels["concrete"],
			Count:    pb.GetCounter().GetValue(),
		})
	}
	slices.SortFunc(samples, func(a, b Sample) bool {
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.Concrete < b.Concrete
	})
	return samples
}

// collect reads every series of vec.
func collect(vec *prometheus.CounterVec) []*dto.Metric {
	ch := make(chan prometheus.Metric)
	go func() {
		vec.Collect(ch)
		close(ch)
	}()
	var series []*dto.Metric
	for m := range ch {
		pb := &dto.Metric{}
		if err := m.Write(pb); err != nil {
			continue
		}
		series = append(series, pb)
	}
	return series
}

func labelsOf(pb *dto.Metric) map[string]string {
	labels := make(map[string]string, len(pb.GetLabel()))
	for _, label := range pb.GetLabel() {
		labels[label.GetName()] = label.GetValue()
	}
	return labels
}

// find returns the value of the series of vec with exactly labels, 0 if it does not exist.
func find(vec *prometheus.CounterVec, labels map[string]string) float64 {
	for _, pb := range collect(vec) {
		if maps.Equal(labelsOf(pb), labels) {
			return pb.GetCounter().GetValue()
		}
	}
	return 0
}
