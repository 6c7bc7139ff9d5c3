package payments

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrPixKeyNotConfigured = errors.New("pix key not configured")
	ErrInvalidPixAmount    = errors.New("pix amount must be positive")
)

const (
	localPixExpiration = 30 * time.Minute
	pixGUI             = "br.gov.bcb.pix"
	maxMerchantName    = 25
	maxMerchantCity    = 15
	maxPixTxID         = 25
)

// LocalPixGenerator builds a static PIX BR Code (EMV QRCPS) without calling
// any gateway. Charges created this way can only be confirmed through the
// local path, so their ids carry the PIX_ prefix.
type LocalPixGenerator struct {
	key  string
	name string
	city string
	now  func() time.Time
}

var _ interfaces.ILocalPixGenerator = (*LocalPixGenerator)(nil)

func NewLocalPixGenerator(key, merchantName, merchantCity string) *LocalPixGenerator {
	return &LocalPixGenerator{
		key:  strings.TrimSpace(key),
		name: sanitizeEMVText(defaultString(merchantName, "LOJA"), maxMerchantName),
		city: sanitizeEMVText(defaultString(merchantCity, "SAO PAULO"), maxMerchantCity),
		now:  time.Now,
	}
}

func (g *LocalPixGenerator) Generate(req entities.PixChargeRequest) (entities.PixCharge, error) {
	if g == nil || g.key == "" {
		return entities.PixCharge{}, ErrPixKeyNotConfigured
	}
	if req.Amount <= 0 {
		return entities.PixCharge{}, ErrInvalidPixAmount
	}

	now := g.now().UTC()
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	// The EMV txid field only accepts alphanumerics.
	txID := truncate("PIX"+millis, maxPixTxID)

	return entities.PixCharge{
		TransactionID: "PIX_" + millis,
		QRCode:        BuildPixBRCode(g.key, g.name, g.city, entities.FormatAmount(req.Amount), txID),
		Status:        string(entities.PaymentStatusPending),
		ExpiresAt:     now.Add(localPixExpiration),
		Provider:      entities.PixProviderLocal,
	}, nil
}

// BuildPixBRCode assembles the "copia e cola" payload and appends its CRC.
func BuildPixBRCode(key, merchantName, merchantCity, amount, txID string) string {
	var b strings.Builder
	b.WriteString(emvField("00", "01"))
	b.WriteString(emvField("26", emvField("00", pixGUI)+emvField("01", key)))
	b.WriteString(emvField("52", "0000"))
	b.WriteString(emvField("53", "986"))
	b.WriteString(emvField("54", amount))
	b.WriteString(emvField("58", "BR"))
	b.WriteString(emvField("59", merchantName))
	b.WriteString(emvField("60", merchantCity))
	b.WriteString(emvField("62", emvField("05", txID)))
	b.WriteString("6304")

	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16CCITTFalse([]byte(payload)))
}

func emvField(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// crc16CCITTFalse: poly 0x1021, init 0xFFFF, no reflection, no final xor.
func crc16CCITTFalse(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range data {
		crc ^= uint16(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// sanitizeEMVText keeps upper-case ASCII letters, digits and spaces so that
// byte length equals character length.
func sanitizeEMVText(s string, max int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			if folded, ok := accentFold[r]; ok {
				b.WriteRune(folded)
			}
		}
	}
	return truncate(strings.TrimSpace(b.String()), max)
}

var accentFold = map[rune]rune{
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A',
	'É': 'E', 'Ê': 'E', 'È': 'E',
	'Í': 'I', 'Î': 'I',
	'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O',
	'Ú': 'U', 'Ü': 'U',
	'Ç': 'C',
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
