package hierarchy

// Round1 exposes round1 to the external tests.
var Round1 = round1
