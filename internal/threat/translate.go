package threat

import (
	"errors"
	"fmt"
	"strings"

	"mispimport/internal/misp"
)

var (
	ErrMissingField = errors.New("indicator record is missing type or value")
	ErrUnmappedType = errors.New("indicator type has no MISP mapping")
)

// TypeTagPrefix prefixes the synthetic tag added to object attributes.
const TypeTagPrefix = "CrowdStrike:indicator:type: "

// Rule maps one vendor indicator type onto either a MISP object relation or a
// flat MISP attribute, depending on Kind.
type Rule struct {
	Type string
	Kind Kind

	// KindObject
	Container string
	Relation  string

	// KindAttribute
	Category      string
	AttributeType string
}

func objectRule(typ, container, relation string) Rule {
	return Rule{Type: typ, Kind: KindObject, Container: container, Relation: relation}
}

func attributeRule(typ, category, attrType string) Rule {
	return Rule{Type: typ, Kind: KindAttribute, Category: category, AttributeType: attrType}
}

var rules = []Rule{
	objectRule("password", "credential", "password"),
	objectRule("username", "credential", "username"),
	objectRule("x509_serial", "x509", "serial-number"),
	objectRule("x509_subject", "x509", "subject"),

	attributeRule("hash_md5", "Artifacts dropped", "md5"),
	attributeRule("hash_sha256", "Artifacts dropped", "sha256"),
	attributeRule("hash_sha1", "Artifacts dropped", "sha1"),
	attributeRule("hash_imphash", "Artifacts dropped", "imphash"),
	attributeRule("file_name", "Artifacts dropped", "filename"),
	attributeRule("file_path", "Payload delivery", "filename"),
	attributeRule("url", "Network activity", "url"),
	attributeRule("mutex_name", "Artifacts dropped", "mutex"),
	attributeRule("bitcoin_address", "Financial fraud", "btc"),
	attributeRule("coin_address", "Financial fraud", "bic"),
	attributeRule("email_address", "Payload delivery", "email-reply-to"),
	attributeRule("email_subject", "Payload delivery", "email-subject"),
	attributeRule("registry", "Persistence mechanism", "regkey"),
	attributeRule("device_name", "Targeting data", "target-machine"),
	attributeRule("domain", "Network activity", "domain"),
	attributeRule("campaign_id", "Attribution", "campaign-id"),
	attributeRule("ip_address", "Network activity", "ip-src"),
	attributeRule("service_name", "Artifacts Dropped", "windows-service-name"),
	attributeRule("user_agent", "Network activity", "user-agent"),
	attributeRule("port", "Network activity", "port"),
}

var ruleIndex = make(map[string]Rule, len(rules))

func init() {
	for _, r := range rules {
		if _, dup := ruleIndex[r.Type]; dup {
			panic(fmt.Sprintf("threat: duplicate rule for indicator type %q", r.Type))
		}
		ruleIndex[r.Type] = r
	}
}

// Rules returns the mapping table in declaration order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Lookup returns the rule for an indicator type.
func Lookup(typ string) (Rule, bool) {
	r, ok := ruleIndex[typ]
	return r, ok
}

// AttributeType returns the MISP attribute type a vendor type maps to. Types that
// only map onto object relations return "".
func AttributeType(typ string) string {
	r, ok := Lookup(typ)
	if !ok || r.Kind != KindAttribute {
		return ""
	}
	return r.AttributeType
}

// Translate builds the MISP entity for one indicator. Object results carry the
// first/last seen timestamps and tags; attribute results are bare.
func Translate(ind Indicator, tags []string) (Result, error) {
	if ind.Type == "" || ind.Indicator == "" {
		return Result{}, ErrMissingField
	}

	r, ok := Lookup(ind.Type)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnmappedType, ind.Type)
	}

	if r.Kind == KindObject {
		obj := misp.NewObject(r.Container)
		att := obj.AddAttribute(r.Relation, ind.Indicator)
		if ind.PublishedDate != 0 {
			att.SetFirstSeen(ind.PublishedDate)
		}
		if ind.LastUpdated != 0 {
			att.SetLastSeen(ind.LastUpdated)
		}
		att.AddTag(TypeTag(r.Relation))
		for _, t := range tags {
			att.AddTag(t)
		}
		return Result{Object: obj}, nil
	}

	return Result{Attribute: &misp.Attribute{
		Category: r.Category,
		Type:     r.AttributeType,
		Value:    ind.Indicator,
	}}, nil
}

// TypeTag returns the synthetic type tag for an object relation.
func TypeTag(relation string) string {
	return TypeTagPrefix + strings.ToUpper(relation)
}
