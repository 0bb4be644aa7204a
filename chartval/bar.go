// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"time"

	"github.com/ericlagergren/decimal"
)

// Bar is one OHLCV sample. Prices are decimals as delivered by the data
// layer; the rendering core only ever reads them (converted to float64 at
// layout time) and never mutates a bar.
type Bar struct {
	Timestamp  time.Time
	OpenPrice  *decimal.Big
	HighPrice  *decimal.Big
	LowPrice   *decimal.Big
	ClosePrice *decimal.Big
	Volume     *decimal.Big
}

// NewBar converts float values into a decimal-valued bar.
func NewBar(t time.Time, o, h, l, c, v float64) Bar {
	return Bar{
		Timestamp:  t,
		OpenPrice:  ConvertFloatToDecimal(o, 64),
		HighPrice:  ConvertFloatToDecimal(h, 64),
		LowPrice:   ConvertFloatToDecimal(l, 64),
		ClosePrice: ConvertFloatToDecimal(c, 64),
		Volume:     ConvertFloatToDecimal(v, 64),
	}
}

func (b Bar) IsGreen() bool {
	o, _ := b.OpenPrice.Float64()
	c, _ := b.ClosePrice.Float64()
	return IsGreenCandle(o, c)
}

// For sorting
type BarList []Bar

func (x BarList) Len() int           { return len(x) }
func (x BarList) Less(i, j int) bool { return x[i].Timestamp.Before(x[j].Timestamp) }
func (x BarList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }
