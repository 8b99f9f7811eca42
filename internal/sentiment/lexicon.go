package sentiment

// defaultLexicon is a compact English opinion lexicon. Polarity follows the
// usual [-1,1] convention; subjectivity is high for emotive words and low for
// descriptive ones.
var defaultLexicon = map[string]entry{
	// strongly positive
	"amazing":     {0.9, 0.9},
	"awesome":     {0.9, 0.9},
	"excellent":   {0.9, 0.8},
	"fantastic":   {0.9, 0.9},
	"wonderful":   {0.9, 0.9},
	"perfect":     {0.9, 0.9},
	"brilliant":   {0.9, 0.9},
	"love":        {0.8, 0.8},
	"loved":       {0.8, 0.8},
	"best":        {0.8, 0.7},
	"beautiful":   {0.8, 0.8},
	"delighted":   {0.8, 0.9},
	"thrilled":    {0.8, 0.9},
	"great":       {0.7, 0.7},
	"happy":       {0.7, 0.8},
	"glad":        {0.6, 0.8},
	"enjoy":       {0.6, 0.7},
	"enjoyed":     {0.6, 0.7},
	"good":        {0.5, 0.6},
	"nice":        {0.5, 0.7},
	"pleasant":    {0.5, 0.7},
	"fine":        {0.3, 0.5},
	"okay":        {0.2, 0.5},
	"ok":          {0.2, 0.5},
	"better":      {0.4, 0.5},
	"improved":    {0.4, 0.4},
	"excited":     {0.7, 0.9},
	"fun":         {0.6, 0.8},
	"funny":       {0.5, 0.9},
	"interesting": {0.4, 0.6},

	// strongly negative
	"terrible":      {-0.9, 0.9},
	"horrible":      {-0.9, 0.9},
	"awful":         {-0.9, 0.9},
	"disgusting":    {-0.9, 0.9},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.8, 0.9},
	"worst":         {-0.8, 0.8},
	"furious":       {-0.8, 0.9},
	"angry":         {-0.7, 0.9},
	"outraged":      {-0.8, 0.9},
	"disappointed":  {-0.6, 0.8},
	"disappointing": {-0.6, 0.8},
	"sad":           {-0.6, 0.8},
	"unhappy":       {-0.6, 0.8},
	"miserable":     {-0.7, 0.9},
	"depressed":     {-0.7, 0.8},
	"bad":           {-0.5, 0.6},
	"poor":          {-0.4, 0.6},
	"boring":        {-0.5, 0.8},
	"annoying":      {-0.6, 0.8},
	"broken":        {-0.4, 0.4},
	"useless":       {-0.6, 0.7},
	"worse":         {-0.5, 0.5},
	"upset":         {-0.6, 0.8},
	"crying":        {-0.5, 0.7},
	"lost":          {-0.3, 0.4},
	"failed":        {-0.5, 0.5},
	"failure":       {-0.5, 0.5},
	"wrong":         {-0.4, 0.5},
	"slow":          {-0.3, 0.5},

	// opinionated but near-neutral polarity
	"surprising":   {0.1, 0.9},
	"surprised":    {0.1, 0.9},
	"unexpected":   {0.0, 0.8},
	"unbelievable": {0.2, 0.9},
	"strange":      {-0.1, 0.8},
	"weird":        {-0.2, 0.8},
	"crazy":        {0.0, 0.9},
	"shocking":     {-0.2, 0.9},
	"shocked":      {-0.1, 0.9},
	"maybe":        {0.0, 0.6},
	"probably":     {0.0, 0.5},
	"think":        {0.0, 0.5},
	"feel":         {0.0, 0.6},
	"believe":      {0.0, 0.6},
	"seems":        {0.0, 0.5},
	"apparently":   {0.0, 0.6},
}
