package rdf

import (
	"fmt"
	"sort"
)

// NamespaceTable resolves IRIs to QNames (prefix:localName) for the
// lifetime of one Serialize call. It starts from the graph's declared
// PrefixTable and synthesizes "ns<k>" prefixes on demand for namespaces
// that appear in the data but were never declared.
type NamespaceTable struct {
	prefixToNS map[string]string
	nsToPrefix map[string]string
	generated  map[string]bool
	nextGen    int
	allowGen   bool
}

// NewNamespaceTable builds a table seeded from the graph's prefix
// declarations. allowGenerated controls whether Resolve synthesizes new
// prefixes for unknown namespaces (Config.GeneratePrefixes).
func NewNamespaceTable(declared PrefixTable, allowGenerated bool) *NamespaceTable {
	t := &NamespaceTable{
		prefixToNS: make(map[string]string),
		nsToPrefix: make(map[string]string),
		generated:  make(map[string]bool),
		allowGen:   allowGenerated,
	}
	prefixes := declared.Prefixes()
	for _, p := range prefixes {
		ns, _ := declared.Namespace(p)
		t.register(p, ns)
	}
	return t
}

// register records a prefix/namespace pair. When the namespace already has
// a prefix, the shorter-then-lexicographically-earlier of the two is kept
// and the other is dropped.
func (t *NamespaceTable) register(prefix, ns string) {
	if existing, ok := t.nsToPrefix[ns]; ok {
		if preferPrefix(prefix, existing) {
			delete(t.prefixToNS, existing)
			t.prefixToNS[prefix] = ns
			t.nsToPrefix[ns] = prefix
		}
		return
	}
	t.prefixToNS[prefix] = ns
	t.nsToPrefix[ns] = prefix
}

// preferPrefix reports whether candidate should replace incumbent as the
// preferred prefix for a shared namespace: shorter wins, then
// lexicographically earlier.
func preferPrefix(candidate, incumbent string) bool {
	if len(candidate) != len(incumbent) {
		return len(candidate) < len(incumbent)
	}
	return candidate < incumbent
}

// Resolve returns the prefix registered for ns (without ':'), generating a fresh
// "ns<k>" prefix if ns is unknown and generation is allowed. ok is false if
// ns has no namespace (empty string) or generation is disallowed and ns is
// unregistered.
func (t *NamespaceTable) Resolve(ns string) (prefix string, ok bool) {
	if ns == "" {
		return "", false
	}
	if p, found := t.nsToPrefix[ns]; found {
		return p, true
	}
	if !t.allowGen {
		return "", false
	}
	for {
		candidate := fmt.Sprintf("ns%d", t.nextGen)
		t.nextGen++
		if _, taken := t.prefixToNS[candidate]; taken {
			continue
		}
		t.prefixToNS[candidate] = ns
		t.nsToPrefix[ns] = candidate
		t.generated[candidate] = true
		return candidate, true
	}
}

// QName resolves an IRI's namespace to a prefix and returns "prefix:local",
// or just "local" when the namespace is bound to the empty (default)
// prefix. ok is false if the IRI has no local name to split off, the local name is
// not a valid NCName (e.g. it still contains a "/"), or its namespace cannot
// be resolved.
func (t *NamespaceTable) QName(iri IRI) (qname string, ok bool) {
	ns, local, split := splitIRI(iri.Value)
	if !split || !isQNameLocal(local) {
		return "", false
	}
	prefix, resolved := t.Resolve(ns)
	if !resolved {
		return "", false
	}
	if prefix == "" {
		return local, true
	}
	return prefix + ":" + local, true
}

// Declarations returns every prefix/namespace pair currently registered
// (declared plus generated so far), sorted by prefix, for emitting @prefix
// or xmlns declarations.
func (t *NamespaceTable) Declarations() []NamespaceDecl {
	out := make([]NamespaceDecl, 0, len(t.prefixToNS))
	for p, ns := range t.prefixToNS {
		out = append(out, NamespaceDecl{Prefix: p, Namespace: ns, Generated: t.generated[p]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// NamespaceDecl is one resolved prefix/namespace binding.
type NamespaceDecl struct {
	Prefix    string
	Namespace string
	Generated bool
}
