package lexicon

// Fixed reference tables the extractor matches against. Loaded once at process
// start; treated as read-only.

// healthcareKeywords are matched case-insensitively as substrings.
var healthcareKeywords = []string{
	"patient",
	"provider",
	"physician",
	"doctor",
	"nurse",
	"clinical",
	"clinician",
	"medical",
	"healthcare",
	"hospital",
	"diagnosis",
	"treatment",
	"medication",
	"prescription",
	"pharmacy",
	"laboratory",
	"radiology",
	"appointment",
	"admission",
	"discharge",
	"insurance",
	"billing",
	"consent",
	"emergency",
	"telehealth",
}

// regulatoryStandards maps abbreviations (matched as substrings) to the full
// standard name carried through compliance lists and reports.
var regulatoryStandards = map[string]string{
	"HIPAA":     "HIPAA Security Rule",
	"HITECH":    "HITECH Act",
	"FDA":       "FDA 21 CFR Part 820",
	"GDPR":      "GDPR Article 32",
	"HL7":       "HL7 v2.8 Messaging Standard",
	"FHIR":      "HL7 FHIR R4",
	"DICOM":     "DICOM PS3.15 Security Profiles",
	"ISO 13485": "ISO 13485:2016",
	"IEC 62304": "IEC 62304:2006",
	"SOC 2":     "SOC 2 Type II",
}

// actionVerbs are matched as whole words.
var actionVerbs = []string{
	"authenticate",
	"authorize",
	"validate",
	"verify",
	"encrypt",
	"decrypt",
	"store",
	"retrieve",
	"transmit",
	"record",
	"log",
	"audit",
	"display",
	"generate",
	"process",
	"schedule",
	"prescribe",
	"notify",
	"archive",
	"delete",
}

// dataElements are matched as whole words or phrases.
var dataElements = []string{
	"patient record",
	"medical record",
	"health record",
	"medical record number",
	"mrn",
	"phi",
	"ssn",
	"social security number",
	"date of birth",
	"insurance number",
	"lab result",
	"test result",
	"diagnosis code",
	"procedure code",
	"provider id",
	"vital signs",
	"allergy list",
	"medication list",
	"care plan",
}
