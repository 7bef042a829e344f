// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package norm normalizes raw script lines before tokenization: stripping
// trailing carriage returns, collapsing runs of whitespace, and recognizing
// blank and comment lines per §4.1's lexical contract.
package norm
