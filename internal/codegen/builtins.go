package codegen

// builtin maps an XML Schema built-in datatype onto a Go type and the facets
// the datatype implies.
type builtin struct {
	goType string
	facets string
}

const (
	goString  = "string"
	goBool    = "bool"
	goInt     = "int"
	goFloat64 = "float64"
)

var builtins = map[string]builtin{
	"anyType":       {goType: goString},
	"anySimpleType": {goType: goString},

	"string":           {goType: goString},
	"normalizedString": {goType: goString, facets: "whiteSpace=replace"},
	"token":            {goType: goString, facets: "whiteSpace=collapse"},
	"language":         {goType: goString, facets: "whiteSpace=collapse"},
	"Name":             {goType: goString, facets: "whiteSpace=collapse"},
	"NCName":           {goType: goString, facets: "whiteSpace=collapse"},
	"ID":               {goType: goString, facets: "whiteSpace=collapse"},
	"IDREF":            {goType: goString, facets: "whiteSpace=collapse"},
	"IDREFS":           {goType: goString, facets: "whiteSpace=collapse"},
	"ENTITY":           {goType: goString, facets: "whiteSpace=collapse"},
	"ENTITIES":         {goType: goString, facets: "whiteSpace=collapse"},
	"NMTOKEN":          {goType: goString, facets: "whiteSpace=collapse"},
	"NMTOKENS":         {goType: goString, facets: "whiteSpace=collapse"},
	"anyURI":           {goType: goString, facets: "whiteSpace=collapse"},
	"QName":            {goType: goString, facets: "whiteSpace=collapse"},
	"NOTATION":         {goType: goString, facets: "whiteSpace=collapse"},
	"hexBinary":        {goType: goString, facets: "whiteSpace=collapse"},
	"base64Binary":     {goType: goString, facets: "whiteSpace=collapse"},

	"duration":   {goType: goString, facets: "whiteSpace=collapse"},
	"dateTime":   {goType: goString, facets: "whiteSpace=collapse"},
	"time":       {goType: goString, facets: "whiteSpace=collapse"},
	"date":       {goType: goString, facets: "whiteSpace=collapse"},
	"gYearMonth": {goType: goString, facets: "whiteSpace=collapse"},
	"gYear":      {goType: goString, facets: "whiteSpace=collapse"},
	"gMonthDay":  {goType: goString, facets: "whiteSpace=collapse"},
	"gDay":       {goType: goString, facets: "whiteSpace=collapse"},
	"gMonth":     {goType: goString, facets: "whiteSpace=collapse"},

	"boolean": {goType: goBool},

	"decimal": {goType: goFloat64},
	"float":   {goType: goFloat64},
	"double":  {goType: goFloat64},

	"integer":            {goType: goInt},
	"long":               {goType: goInt},
	"int":                {goType: goInt, facets: "minInclusive=-2147483648,maxInclusive=2147483647"},
	"short":              {goType: goInt, facets: "minInclusive=-32768,maxInclusive=32767"},
	"byte":               {goType: goInt, facets: "minInclusive=-128,maxInclusive=127"},
	"nonNegativeInteger": {goType: goInt, facets: "minInclusive=0"},
	"positiveInteger":    {goType: goInt, facets: "minInclusive=1"},
	"nonPositiveInteger": {goType: goInt, facets: "maxInclusive=0"},
	"negativeInteger":    {goType: goInt, facets: "maxInclusive=-1"},
	"unsignedLong":       {goType: goInt, facets: "minInclusive=0"},
	"unsignedInt":        {goType: goInt, facets: "minInclusive=0,maxInclusive=4294967295"},
	"unsignedShort":      {goType: goInt, facets: "minInclusive=0,maxInclusive=65535"},
	"unsignedByte":       {goType: goInt, facets: "minInclusive=0,maxInclusive=255"},
}

func lookupBuiltin(local string) (builtin, bool) {
	b, ok := builtins[local]
	return b, ok
}
