package classify

import "regexp"

// Pattern is one matching rule: optional regexes for the merchant text, the
// transaction type and the description, plus a weight in (0,1]. When several
// of a pattern's regexes match, the contributed score is the weight once, not
// a sum.
type Pattern struct {
	Merchant    *regexp.Regexp
	Type        *regexp.Regexp
	Description *regexp.Regexp
	Weight      float64
}

// CategoryRules groups the patterns of one category. Declaration order
// matters: under equal scores the first-declared category wins, so the rule
// table is a slice, never a map.
type CategoryRules struct {
	Category string
	Patterns []Pattern
}

func merchant(expr string, weight float64) Pattern {
	return Pattern{Merchant: regexp.MustCompile(expr), Weight: weight}
}

func txnType(expr string, weight float64) Pattern {
	return Pattern{Type: regexp.MustCompile(expr), Weight: weight}
}

func description(expr string, weight float64) Pattern {
	return Pattern{Description: regexp.MustCompile(expr), Weight: weight}
}

// DefaultRules returns the built-in rule table. The patterns are tuned to one
// sample dataset and make no claim of regional generality.
func DefaultRules() []CategoryRules {
	return []CategoryRules{
		{Category: "transport", Patterns: []Pattern{
			merchant(`(?i)\bbolt\b`, 1.0),
			merchant(`(?i)\buber\b`, 1.0),
			merchant(`(?i)\btaxi\b`, 0.8),
			merchant(`(?i)\bcammeo\b`, 0.9),
			merchant(`(?i)\bzet\b`, 1.0),
			description(`(?i)\bparking\b`, 0.7),
		}},
		{Category: "food-delivery", Patterns: []Pattern{
			merchant(`(?i)\bwolt\b`, 1.0),
			merchant(`(?i)\buber\s*eats\b`, 1.0),
			merchant(`(?i)\bglovo\b`, 1.0),
			merchant(`(?i)\bdeliveroo\b`, 1.0),
		}},
		{Category: "fast-food", Patterns: []Pattern{
			merchant(`(?i)\bmcdonald`, 1.0),
			merchant(`(?i)\bkfc\b`, 1.0),
			merchant(`(?i)\bdomino`, 1.0),
			merchant(`(?i)\bburger\s*king\b`, 1.0),
			merchant(`(?i)\bsubmarine\b`, 0.9),
			merchant(`(?i)\bpizza\b`, 0.7),
			merchant(`(?i)\bmlinar\b`, 1.0),
			merchant(`(?i)\bkeindl\b`, 1.0),
			merchant(`(?i)\btorte\s*i\s*to\b`, 1.0),
			merchant(`(?i)\bumami\b`, 0.9),
		}},
		{Category: "groceries", Patterns: []Pattern{
			merchant(`(?i)\blidl\b`, 1.0),
			merchant(`(?i)\bkonzum\b`, 1.0),
			merchant(`(?i)\bkaufland\b`, 1.0),
			merchant(`(?i)\bplodine\b`, 1.0),
			merchant(`(?i)\bspar\b`, 1.0),
			merchant(`(?i)\btommy\b`, 0.9),
			merchant(`(?i)\bsupermarket\b`, 0.8),
			merchant(`(?i)\bstudenac\b`, 1.0),
		}},
		{Category: "subscriptions", Patterns: []Pattern{
			merchant(`(?i)\byoutube\b`, 1.0),
			merchant(`(?i)\bnetflix\b`, 1.0),
			merchant(`(?i)\bspotify\b`, 1.0),
			merchant(`(?i)\bcursor\b`, 1.0),
			merchant(`(?i)\bdisney`, 1.0),
			merchant(`(?i)\bpatreon\b`, 1.0),
			merchant(`(?i)\bonlyfans\b`, 1.0),
			merchant(`(?i)\bobsidian\b`, 1.0),
			merchant(`(?i)\bhack\s*the\s*box\b`, 1.0),
			merchant(`(?i)\bapple\s*music\b`, 1.0),
		}},
		{Category: "gaming", Patterns: []Pattern{
			merchant(`(?i)\bsteam\b`, 1.0),
			merchant(`(?i)\bblizzard\b`, 1.0),
			merchant(`(?i)\bepic\s*games\b`, 1.0),
			merchant(`(?i)\briots*games\b`, 1.0),
			merchant(`(?i)\bplaystation\b`, 1.0),
			merchant(`(?i)\bxbox\b`, 1.0),
			merchant(`(?i)\bnintendo\b`, 1.0),
		}},
		{Category: "shopping", Patterns: []Pattern{
			merchant(`(?i)\bamazon\b`, 1.0),
			merchant(`(?i)\btemu\b`, 1.0),
			merchant(`(?i)\bebay\b`, 1.0),
			merchant(`(?i)\baliexpress\b`, 1.0),
			merchant(`(?i)\bwish\b`, 1.0),
			merchant(`(?i)\bembossy\b`, 0.9),
			merchant(`(?i)\blibidex\b`, 0.9),
			merchant(`(?i)\beuropa\s*92\b`, 0.8),
			merchant(`(?i)\bpevex\b`, 1.0),
			merchant(`(?i)\bdeichmann\b`, 1.0),
			merchant(`(?i)\bcropp\b`, 1.0),
			merchant(`(?i)\bikea\b`, 1.0),
			merchant(`(?i)\blinks\b`, 0.9),
			merchant(`(?i)\bc\s*&\s*a\b`, 1.0),
			merchant(`(?i)\bvrutak\b`, 0.8),
		}},
		{Category: "utilities", Patterns: []Pattern{
			merchant(`(?i)\bkeks\s*pay\b`, 1.0),
			merchant(`(?i)\bhrvatski\s*telekom\b`, 1.0),
			merchant(`(?i)\ba1\b`, 0.9),
			merchant(`(?i)\btelemach\b`, 1.0),
			merchant(`(?i)\bcloudflare\b`, 1.0),
			merchant(`(?i)\bmicrosoft\b`, 0.8),
			merchant(`(?i)\bgoogle\s*play\b`, 0.7),
			merchant(`(?i)\bregulation\b`, 0.6),
		}},
		{Category: "health", Patterns: []Pattern{
			merchant(`(?i)\bdm\s*drogerie\b`, 1.0),
			merchant(`(?i)\bpharmacy\b`, 0.9),
			merchant(`(?i)\bljekarna\b`, 1.0),
			merchant(`(?i)\bapoteka\b`, 0.9),
			merchant(`(?i)dental`, 1.0),
			merchant(`(?i)\bdoctor\b`, 0.8),
			merchant(`(?i)\bm[üu]ller\b`, 1.0),
			merchant(`(?i)\bgymbeam\b`, 1.0),
			merchant(`(?i)\bbipa\b`, 1.0),
			merchant(`(?i)\bfarmacia\b`, 1.0),
		}},
		{Category: "books", Patterns: []Pattern{
			merchant(`(?i)\bkobo\b`, 1.0),
			merchant(`(?i)\bkindle\b`, 1.0),
			merchant(`(?i)\bbook`, 0.7),
			merchant(`(?i)\baudible\b`, 0.9),
			merchant(`(?i)\bgalileo\b`, 1.0),
			merchant(`(?i)\belipso\b`, 1.0),
			merchant(`(?i)\bznanje\b`, 1.0),
		}},
		{Category: "entertainment", Patterns: []Pattern{
			merchant(`(?i)\bcinema\b`, 0.9),
			merchant(`(?i)\btheater\b`, 0.9),
			merchant(`(?i)\bmuseum\b`, 0.8),
			merchant(`(?i)\bconcert\b`, 0.8),
			merchant(`(?i)\bbar\b`, 0.6),
			merchant(`(?i)\bcafe\b`, 0.5),
			merchant(`(?i)\brestaurant\b`, 0.6),
			merchant(`(?i)\b[žz]abac\b`, 1.0),
			merchant(`(?i)\bcinestar\b`, 1.0),
			merchant(`(?i)\btisak\b`, 0.8),
		}},
		{Category: "cash", Patterns: []Pattern{
			txnType(`(?i)\batm\b`, 1.0),
			description(`(?i)\batm\b`, 1.0),
			description(`(?i)\bcash\s*withdrawal\b`, 1.0),
			description(`(?i)\btransfer\b`, 0.6),
			merchant(`(?i)\bpaypal\b`, 0.9),
			// Person-to-person transfers: "First Last". Case-sensitive.
			merchant(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`, 0.5),
		}},
	}
}
