package parser

// Таблица приоритетов. Чем больше число, тем сильнее связывание.
// Цикл Пратта продолжает, пока приоритет инфикса строго больше минимального.
const (
	precLowest      = 0
	precComma       = 1  // ,
	precSpread      = 2  // ... yield, тело стрелки, операнд async
	precAssignment  = 3  // = += -= ... =>
	precConditional = 4  // ?:
	precLogicalOr   = 5  // ||
	precLogicalAnd  = 6  // &&
	precBitwiseOr   = 7  // |
	precBitwiseXor  = 8  // ^
	precBitwiseAnd  = 9  // &
	precEquality    = 10 // == != === !==
	precRelational  = 11 // < <= > >= in instanceof
	precShift       = 12 // << >> >>>
	precAdditive    = 13 // + -
	precMultiply    = 14 // * / %
	precExponent    = 15 // **
	precUnary       = 16 // ! ~ + - ++ -- new await typeof void delete
	precPostfix     = 17 // x++ x--
	precCall        = 19 // f() a.b a[b]
	precGroup       = 20 // ( ... )

	// Цель объявления var/let/const: выше тернарного, чтобы '=' осталось за объявлением.
	precBinding = precConditional
)

var binarySymbols = []struct {
	sym   string
	prec  int
	right bool
}{
	{",", precComma, false},
	{"||", precLogicalOr, false},
	{"&&", precLogicalAnd, false},
	{"|", precBitwiseOr, false},
	{"^", precBitwiseXor, false},
	{"&", precBitwiseAnd, false},
	{"==", precEquality, false},
	{"!=", precEquality, false},
	{"===", precEquality, false},
	{"!==", precEquality, false},
	{"<", precRelational, false},
	{"<=", precRelational, false},
	{">", precRelational, false},
	{">=", precRelational, false},
	{"<<", precShift, false},
	{">>", precShift, false},
	{">>>", precShift, false},
	{"+", precAdditive, false},
	{"-", precAdditive, false},
	{"*", precMultiply, false},
	{"/", precMultiply, false},
	{"%", precMultiply, false},
	{"**", precExponent, true},
}

// binaryKeywords — инфиксные операторы-слова.
var binaryKeywords = []string{"in", "instanceof"}

var assignmentSymbols = []string{
	"=", "+=", "-=", "*=", "/=", "%=", "**=",
	"<<=", ">>=", ">>>=", "&=", "^=", "|=",
}

var prefixSymbols = []string{"!", "+", "-", "++", "--", "~"}

var prefixKeywords = []string{"new", "await", "typeof", "void", "delete"}
