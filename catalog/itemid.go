// Package catalog builds and holds the immutable collection of catalog items.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/hyperjump/mitsumori/models"
	"github.com/hyperjump/mitsumori/pkg/utils"
)

// descriptionPrefixLen bounds the description contribution to the ID so that
// trailing edits in long descriptions do not change item identity.
const descriptionPrefixLen = 30

// ItemID returns a stable identifier for an extracted record. Identical
// extraction inputs always yield the same ID; the hash covers category,
// provenance, the item identifier, and a description prefix.
func ItemID(raw *models.RawItem) string {
	components := []string{
		raw.Category,
		strconv.Itoa(raw.Provenance.Page),
		strconv.Itoa(raw.Provenance.TableIndex),
		strconv.Itoa(raw.Provenance.RowIndex),
		raw.Identifier,
		utils.Prefix(raw.Description, descriptionPrefixLen),
	}
	hash := sha256.Sum256([]byte(strings.Join(components, "_")))
	return hex.EncodeToString(hash[:])
}
