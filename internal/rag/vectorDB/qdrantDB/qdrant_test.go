package qdrantDB

import (
	"testing"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

func TestPointIdDeterminism(t *testing.T) {
	vectorId := linkModel.VectorId("doc-123", 4)

	first := pointId(vectorId)
	second := pointId(vectorId)

	if first != second {
		t.Errorf("Point id not deterministic: %s vs %s", first, second)
	}

	other := pointId(linkModel.VectorId("doc-123", 5))
	if other == first {
		t.Error("Distinct vector ids mapped to the same point id")
	}
}
