package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemark"
)

// candidate is one strategy's proposal for the main content region.
type candidate struct {
	sel        *goquery.Selection
	score      float64
	source     pagemark.ContentSource
	confidence float64
}

// strategies are evaluated in order against the cleaned tree. Each has
// the same contract: return the best candidate it can find, or nil.
var strategies = []func(*goquery.Selection) *candidate{
	evaluateSemantic,
	evaluateScoring,
	evaluateDensity,
	evaluateStructure,
}

// locate runs every strategy and returns the candidate with the highest
// raw score. Strategy scores live on different scales and are compared
// directly; this is an accepted trade-off that keeps each strategy's
// thresholds independently tunable. Returns nil when no strategy
// produces a candidate.
func locate(root *goquery.Selection) *candidate {
	var best *candidate
	for _, evaluate := range strategies {
		cand := evaluate(root)
		if cand == nil {
			continue
		}
		if best == nil || cand.score > best.score {
			best = cand
		}
	}
	return best
}

// semanticProbes are checked in priority order by the semantic-tag
// strategy: explicit landmarks first, then the container classes and
// ids that publishing platforms conventionally use.
var semanticProbes = []struct {
	selector string
	priority float64
}{
	{"main", 10},
	{"article", 9},
	{`[role="main"]`, 8},
	{".content", 7},
	{".main-content", 7},
	{"#content", 7},
	{"#main", 7},
	{".post-content", 6},
	{".entry-content", 6},
	{".article-content", 6},
	{".post-body", 6},
	{".story-content", 6},
}

// semanticAcceptScore is the combined score a probed element must exceed.
const semanticAcceptScore = 15

// evaluateSemantic probes well-known content containers in priority
// order and accepts the first element whose element score plus probe
// priority clears the acceptance threshold. Confidence is fixed:
// semantic markup is a strong author signal.
func evaluateSemantic(root *goquery.Selection) *candidate {
	for _, probe := range semanticProbes {
		var found *candidate
		root.Find(probe.selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			score := scoreElement(s) + probe.priority
			if score <= semanticAcceptScore {
				return true
			}
			found = &candidate{
				sel:        s,
				score:      score,
				source:     pagemark.SourceSemantic,
				confidence: 0.9,
			}
			return false
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// evaluateScoring scores every container element in the tree and keeps
// the maximum when it clears the threshold.
func evaluateScoring(root *goquery.Selection) *candidate {
	var best *candidate
	root.Find("div, section, article, main").Each(func(_ int, s *goquery.Selection) {
		score := scoreElement(s)
		if score <= 10 {
			return
		}
		if best == nil || score > best.score {
			best = &candidate{
				sel:        s,
				score:      score,
				source:     pagemark.SourceScoring,
				confidence: min(score/50, 1),
			}
		}
	})
	return best
}

// evaluateDensity favors containers where text dominates markup. Short
// blocks are skipped and the density of medium-length blocks is scaled
// down so that a terse but markup-light element cannot win outright.
func evaluateDensity(root *goquery.Selection) *candidate {
	var best *candidate
	root.Find("div, section, article").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) < 200 {
			return
		}
		html, err := s.Html()
		if err != nil || len(html) == 0 {
			return
		}
		density := float64(len(text)) / float64(len(html))
		adjusted := density * min(float64(len(text))/1000, 1)
		if adjusted <= 0.3 {
			return
		}
		if best == nil || adjusted > best.score {
			best = &candidate{
				sel:        s,
				score:      adjusted,
				source:     pagemark.SourceDensity,
				confidence: min(density*2, 1),
			}
		}
	})
	return best
}

// evaluateStructure favors containers with article-like shape: several
// substantial paragraphs, ideally organized under headings and lists.
func evaluateStructure(root *goquery.Selection) *candidate {
	var best *candidate
	root.Find("div, section, article, main").Each(func(_ int, s *goquery.Selection) {
		paragraphs := s.Find("p")
		count := paragraphs.Length()
		if count < 2 {
			return
		}

		total := 0
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			total += len(strings.TrimSpace(p.Text()))
		})
		avgLen := float64(total) / float64(count)
		if avgLen < 50 {
			return
		}

		headings := float64(s.Find("h1, h2, h3, h4, h5, h6").Length())
		lists := float64(s.Find("ul, ol").Length())
		score := float64(count)*2 + headings*3 + lists*1.5 + avgLen/100
		if score <= 10 {
			return
		}
		if best == nil || score > best.score {
			best = &candidate{
				sel:        s,
				score:      score,
				source:     pagemark.SourceStructure,
				confidence: min(score/30, 1),
			}
		}
	})
	return best
}
