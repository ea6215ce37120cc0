package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"kollabee/seller-portal/seller-portal-backend/internal/seller"
)

const indexName = "sellers"

// SellerDocument is the searchable projection of a seller profile that
// buyers query against.
type SellerDocument struct {
	ID                  string   `json:"id"`
	UserID              string   `json:"user_id"`
	BusinessName        string   `json:"business_name"`
	BusinessDescription string   `json:"business_description"`
	BusinessTypes       []string `json:"business_types"`
	BusinessCategories  []string `json:"business_categories"`
	ServicesProvided    []string `json:"services_provided"`
	ProductionCountries []string `json:"production_countries"`
	CertificationTypes  []string `json:"certification_types"`
	Approved            bool     `json:"approved"`
}

// Indexer keeps the sellers index in sync with profile changes.
type Indexer struct {
	es     *elasticsearch.Client
	logger *zap.Logger
}

// NewIndexer creates the indexer.
func NewIndexer(es *elasticsearch.Client, logger *zap.Logger) *Indexer {
	return &Indexer{es: es, logger: logger}
}

// IndexSeller upserts a seller's searchable document.
func (i *Indexer) IndexSeller(ctx context.Context, s *seller.Seller) error {
	doc := SellerDocument{
		ID:                  s.ID.String(),
		UserID:              s.UserID.String(),
		BusinessName:        s.BusinessName,
		BusinessDescription: s.BusinessDescription,
		BusinessTypes:       []string(s.BusinessTypes),
		BusinessCategories:  []string(s.BusinessCategories),
		ServicesProvided:    []string(s.ServicesProvided),
		ProductionCountries: []string(s.ProductionCountries),
		CertificationTypes:  []string(s.CertificationTypes),
		Approved:            s.Approved,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode seller document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, i.es)
	if err != nil {
		return fmt.Errorf("failed to index seller %s: %w", doc.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("failed to index seller %s: %s", doc.ID, res.String())
	}
	return nil
}

// DeleteSeller removes a seller from the index.
func (i *Indexer) DeleteSeller(ctx context.Context, sellerID string) error {
	req := esapi.DeleteRequest{Index: indexName, DocumentID: sellerID}
	res, err := req.Do(ctx, i.es)
	if err != nil {
		return fmt.Errorf("failed to delete seller %s from index: %w", sellerID, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("failed to delete seller %s from index: %s", sellerID, res.String())
	}
	return nil
}

// searchBody builds the query document: a boosted text match over the
// profile fields, restricted to approved sellers.
func searchBody(query string, size int) map[string]any {
	return map[string]any{
		"size": size,
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query": query,
						"fields": []string{
							"business_name^3",
							"business_description",
							"business_categories^2",
							"services_provided",
							"production_countries",
						},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"approved": true},
				},
			},
		},
	}
}

// Search runs a text query over business names, descriptions, and category
// fields, restricted to approved sellers.
func (i *Indexer) Search(ctx context.Context, query string, size int) ([]SellerDocument, error) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(searchBody(query, size)); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := i.es.Search(
		i.es.Search.WithContext(ctx),
		i.es.Search.WithIndex(indexName),
		i.es.Search.WithBody(&body),
	)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source SellerDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	docs := make([]SellerDocument, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		docs = append(docs, hit.Source)
	}
	return docs, nil
}

// EnsureIndex creates the sellers index with its mapping if missing.
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := i.es.Indices.Exists([]string{indexName}, i.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check sellers index: %w", err)
	}
	defer exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"business_name":        {"type": "text"},
				"business_description": {"type": "text"},
				"business_types":       {"type": "keyword"},
				"business_categories":  {"type": "keyword"},
				"services_provided":    {"type": "keyword"},
				"production_countries": {"type": "keyword"},
				"certification_types":  {"type": "keyword"},
				"approved":             {"type": "boolean"}
			}
		}
	}`
	res, err := i.es.Indices.Create(
		indexName,
		i.es.Indices.Create.WithContext(ctx),
		i.es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("failed to create sellers index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("failed to create sellers index: %s", res.String())
	}
	i.logger.Info("created search index", zap.String("index", indexName))
	return nil
}
