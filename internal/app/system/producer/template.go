// internal/app/system/producer/template.go
package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sitesmith/sitesmith/internal/app/system/authutil"
	"github.com/sitesmith/sitesmith/internal/domain/models"
)

// BusinessType keys the closed set of hand-authored bundles.
type BusinessType string

const (
	BusinessGym        BusinessType = "gym"
	BusinessSalon      BusinessType = "salon"
	BusinessRestaurant BusinessType = "restaurant"
	BusinessConsulting BusinessType = "consulting"
)

// AllBusinessTypes lists the supported template keys.
var AllBusinessTypes = []BusinessType{BusinessGym, BusinessSalon, BusinessRestaurant, BusinessConsulting}

// TemplateProducer returns hand-authored bundles by business type. It makes
// no network calls and cannot fail except on an unknown key.
type TemplateProducer struct{}

var _ Producer = (*TemplateProducer)(nil)

// NewTemplate creates a template producer.
func NewTemplate() *TemplateProducer { return &TemplateProducer{} }

// Bundle returns the hand-authored bundle for the given business type with a
// freshly generated admin credential.
func (p *TemplateProducer) Bundle(bt BusinessType) (*models.ContentBundle, error) {
	var b *models.ContentBundle
	switch bt {
	case BusinessGym:
		b = gymBundle()
	case BusinessSalon:
		b = salonBundle()
	case BusinessRestaurant:
		b = restaurantBundle()
	case BusinessConsulting:
		b = consultingBundle()
	default:
		return nil, fmt.Errorf("unknown business type %q", bt)
	}

	password, err := authutil.GeneratePassword()
	if err != nil {
		return nil, fmt.Errorf("generate admin password: %w", err)
	}
	b.AdminCredentials.Password = password
	return b, nil
}

// Produce satisfies the Producer contract: the description is interpreted as
// a business type key and the matching bundle is serialized to JSON, so
// template output flows through the same parse/validate path as generative
// output.
func (p *TemplateProducer) Produce(_ context.Context, description string) (string, error) {
	b, err := p.Bundle(BusinessType(description))
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshal template bundle: %w", err)
	}
	return string(out), nil
}
