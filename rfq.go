package quoteit

import (
	"net/url"
	"strings"
)

// BuildSubject joins the non-empty subject pieces with " - ": prefix,
// request reference, request title and "(vendor name)".
func BuildSubject(rfq RFQSettings, req RequestRecord, vendor VendorRecord) string {
	bits := []string{}
	prefix := rfq.SubjectPrefix
	if prefix == "" {
		prefix = "RFQ"
	}
	bits = append(bits, prefix)
	if req.Reference != "" {
		bits = append(bits, req.Reference)
	}
	if req.Title != "" {
		bits = append(bits, req.Title)
	}
	if vendor.Name != "" {
		bits = append(bits, "("+vendor.Name+")")
	}
	return strings.TrimSpace(strings.Join(bits, " - "))
}

// BuildBody renders the RFQ email body. The render is a fixed template:
// identical inputs always produce byte-identical output, and a section is
// omitted only when its source field is empty.
func BuildBody(profile Profile, rfq RFQSettings, req RequestRecord, vendor VendorRecord) string {
	lines := []string{}

	if vendor.Name != "" {
		lines = append(lines, rfq.Greeting+" "+vendor.Name+",")
	} else {
		lines = append(lines, rfq.Greeting+" Sir/Madam,")
	}
	lines = append(lines, "")

	lines = append(lines, "Please provide a quotation for the following request:")
	lines = append(lines, "")
	if req.Title != "" {
		lines = append(lines, "Title: "+req.Title)
	}
	if req.Category != "" {
		lines = append(lines, "Category: "+req.Category)
	}
	if req.Reference != "" {
		lines = append(lines, "Reference: "+req.Reference)
	}
	if req.NeededBy != "" {
		lines = append(lines, "Needed by: "+req.NeededBy)
	}
	if req.DeliveryTo != "" {
		lines = append(lines, "Delivery to: "+req.DeliveryTo)
	}
	lines = append(lines, "")

	if req.Spec != "" {
		lines = append(lines, "Specification / items:", req.Spec, "")
	}

	if req.Notes != "" {
		lines = append(lines, "Notes:", req.Notes, "")
	}

	lines = append(lines, "Please include in your quote:")
	if rfq.Include.LeadTime {
		lines = append(lines, "- Lead time / delivery timeframe")
	}
	if rfq.Include.Validity {
		lines = append(lines, "- Quote validity period")
	}
	if rfq.Include.Delivery {
		lines = append(lines, "- Delivery charges (if any)")
	}
	if rfq.Include.Payment {
		payment := rfq.PaymentLine
		if payment == "" {
			payment = "Payment terms"
		}
		lines = append(lines, "- "+payment)
	}
	lines = append(lines, "")

	closing := rfq.Closing
	if closing == "" {
		closing = "Kind regards"
	}
	lines = append(lines, closing)

	sender := profile.User
	if sender == "" {
		sender = rfq.SignatureName
	}
	lines = append(lines, sender)
	if profile.Org != "" {
		lines = append(lines, profile.Org)
	}

	return strings.Join(lines, "\n")
}

// encodeComponent percent-encodes like JS encodeURIComponent: spaces become
// %20, not "+", and !'()* stay bare. Mail clients do not decode "+" in mailto
// bodies.
func encodeComponent(s string) string {
	return componentFixups.Replace(url.QueryEscape(s))
}

var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// BuildMailto assembles a mail-compose URI from an address and the built
// subject and body. The caller hands it to the outbound collaborator; nothing
// is sent here.
func BuildMailto(email, subject, body string) string {
	return "mailto:" + encodeComponent(email) +
		"?subject=" + encodeComponent(subject) +
		"&body=" + encodeComponent(body)
}

// BuildVendorSearchQueries assembles up to three de-duplicated web-search
// strings for finding vendors, biased to the German market the tool targets.
func BuildVendorSearchQueries(req RequestRecord, category, city string) []string {
	title := Normalize(req.Title)
	spec := Normalize(req.Spec)
	where := Normalize(city)
	if where == "" {
		where = "Deutschland"
	}
	cat := Normalize(category)

	base := Normalize(strings.TrimSpace(title + " " + spec))

	join := func(parts ...string) string {
		kept := parts[:0]
		for _, p := range parts {
			if p != "" {
				kept = append(kept, p)
			}
		}
		return strings.Join(kept, " ")
	}

	queries := []string{
		join(base, cat, where, "Angebot", "Lieferzeit", "E-Mail"),
		join(base, cat, where, "Händler", "Kontakt", "Ansprechpartner"),
		join(base, where, "Firma", "E-Mail", "Telefon"),
	}
	out := []string{}
	for _, q := range queries {
		if n := Normalize(q); n != "" {
			out = append(out, n)
		}
	}
	return UniqueBy(out, func(q string) string { return q })
}

// GoogleSearchURL wraps a query for the external search collaborator.
func GoogleSearchURL(query string) string {
	return "https://www.google.de/search?q=" + encodeComponent(query)
}

// GoogleMapsURL wraps a query for the external maps collaborator.
func GoogleMapsURL(query string) string {
	return "https://www.google.de/maps/search/" + encodeComponent(query)
}
