package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEntry(t *testing.T) {
	e := Entry{ID: "bert-base-uncased", Category: "model", Type: "model", Label: "bert-base-uncased"}
	rec := ResolveEntry(e, "https://huggingface.co")
	assert.Equal(t, "bert-base-uncased", rec.ID)
	assert.Equal(t, "model", rec.Type)
	assert.Equal(t, "https://huggingface.co/bert-base-uncased", rec.URL)
}

func TestResolveTextSingleTypeInfersType(t *testing.T) {
	rec := ResolveText("my-model", []string{"model"}, "https://huggingface.co")
	assert.Equal(t, "my-model", rec.ID)
	assert.Equal(t, "model", rec.Type)
	assert.Equal(t, "https://huggingface.co/my-model", rec.URL)
}

func TestResolveTextMultiTypeLeavesTypeUnresolved(t *testing.T) {
	rec := ResolveText("my-entity", []string{"model", "dataset"}, "https://huggingface.co")
	assert.Equal(t, "my-entity", rec.ID)
	assert.Empty(t, rec.Type)
	assert.Empty(t, rec.URL)
}

func TestRecordEncode(t *testing.T) {
	rec := Record{ID: "bert", Type: "model", URL: "https://huggingface.co/bert"}
	assert.JSONEq(t, `{"id":"bert","type":"model","url":"https://huggingface.co/bert"}`, rec.Encode())
}

func TestRecordEncodeBareID(t *testing.T) {
	// Unresolved type and url are present as explicit nulls, never omitted.
	rec := Record{ID: "bert"}
	assert.Equal(t, `{"id":"bert","type":null,"url":null}`, rec.Encode())
}

func TestRecordEncodeEmptyIsClearValue(t *testing.T) {
	assert.Equal(t, "", Record{}.Encode())
}

func TestParseHostValueStructured(t *testing.T) {
	id := ParseHostValue(`{"id":"bert-base","type":"model","url":"https://huggingface.co/bert-base"}`)
	assert.Equal(t, "bert-base", id)
}

func TestParseHostValueBareString(t *testing.T) {
	assert.Equal(t, "bert-base", ParseHostValue("bert-base"))
}

func TestParseHostValueMalformedJSONFallsBackToRaw(t *testing.T) {
	assert.Equal(t, "{not valid json}", ParseHostValue("{not valid json}"))
}

func TestParseHostValueStructuredWithNulls(t *testing.T) {
	assert.Equal(t, "bert", ParseHostValue(`{"id":"bert","type":null,"url":null}`))
}

func TestParseHostValueStructuredWithoutID(t *testing.T) {
	assert.Equal(t, "", ParseHostValue(`{"type":"model"}`))
}

func TestParseHostValueNoValueLiterals(t *testing.T) {
	assert.Equal(t, "", ParseHostValue(""))
	assert.Equal(t, "", ParseHostValue("  "))
	assert.Equal(t, "", ParseHostValue("null"))
	assert.Equal(t, "", ParseHostValue("undefined"))
}
