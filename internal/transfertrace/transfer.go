package transfertrace

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// weiPerEther is the fixed divisor between base units and major units.
var weiPerEther = new(big.Int).SetUint64(params.Ether)

// etherDecimals is the number of fractional digits needed to render any wei amount exactly.
const etherDecimals = 18

// Transfer is a value movement whose sender is the watched address.
type Transfer struct {
	TransactionID string   // Hash of the transaction the frame belongs to
	From          string   // Lower-cased sender (the watched address)
	To            string   // Lower-cased recipient, or UnknownAddress
	Wei           *big.Int // Amount in base units
	Value         *big.Rat // Amount in major units (Wei / 10^18), exact
}

func newTransfer(transactionID string, frame *CallFrame, wei *big.Int) Transfer {
	return Transfer{
		TransactionID: transactionID,
		From:          frame.Sender(),
		To:            frame.Recipient(),
		Wei:           wei,
		Value:         WeiToEther(wei),
	}
}

// WeiToEther converts a base-unit amount into major units. A nil amount is zero.
func WeiToEther(wei *big.Int) *big.Rat {
	if wei == nil {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(wei, weiPerEther)
}

// FormatEther renders an amount as a plain decimal string with at least one
// fractional digit and no trailing zeros beyond it (e.g. "1.0", "0.25").
func FormatEther(v *big.Rat) string {
	if v == nil {
		return "0.0"
	}

	s := v.FloatString(etherDecimals)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// EtherString is FormatEther applied to the transfer value.
func (t Transfer) EtherString() string {
	return FormatEther(t.Value)
}
