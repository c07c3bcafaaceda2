package grammar

var GenericKeywords = []string{
	"if", "else", "for", "while",
}

var GenericCommands = []string{
	"echo", "exit",
}

// ShellKeywords are the control flow words of sh and bash.
var ShellKeywords = []string{
	"if", "then", "else", "elif", "fi", "for", "done", "do", "while", "in",
	"case", "esac", "break", "continue", "function", "return",
}

// ShellCommands are builtins and common utilities.
var ShellCommands = []string{
	"alias", "apropos", "awk", "basename", "bash", "bc", "bg", "builtin",
	"bzip2", "cal", "cat", "cd", "cfdisk", "chgrp", "chmod", "chown", "chroot",
	"cksum", "clear", "cmp", "comm", "command", "cp", "cron", "crontab",
	"csplit", "cut", "date", "dc", "dd", "ddrescue", "declare", "df", "diff",
	"diff3", "dig", "dir", "dircolors", "dirname", "dirs", "du", "echo",
	"egrep", "eject", "enable", "env", "ethtool", "eval", "exec", "exit",
	"expand", "export", "expr", "false", "fdformat", "fdisk", "fg", "fgrep",
	"file", "find", "fmt", "fold", "format", "free", "fsck", "ftp", "gawk",
	"getopts", "grep", "groups", "gzip", "hash", "head", "history", "hostname",
	"id", "ifconfig", "import", "install", "join", "kill", "less", "let", "ln",
	"local", "locate", "logname", "logout", "look", "lpc", "lpr", "lprint",
	"lprintd", "lprintq", "lprm", "ls", "lsof", "make", "man", "mkdir",
	"mkfifo", "mkisofs", "mknod", "more", "mount", "mtools", "mv", "netstat",
	"nice", "nl", "nohup", "nslookup", "open", "op", "passwd", "paste",
	"pathchk", "ping", "popd", "pr", "printcap", "printenv", "printf", "ps",
	"pushd", "pwd", "quota", "quotacheck", "quotactl", "ram", "rcp", "read",
	"readonly", "renice", "remsync", "rm", "rmdir", "rsync", "screen", "scp",
	"sdiff", "sed", "select", "seq", "set", "sftp", "shift", "shopt",
	"shutdown", "sleep", "sort", "source", "split", "ssh", "strace", "su",
	"sudo", "sum", "symlink", "sync", "tail", "tar", "tee", "test", "time",
	"times", "touch", "top", "traceroute", "trap", "tr", "true", "tsort", "tty",
	"type", "ulimit", "umask", "umount", "unalias", "uname", "unexpand", "uniq",
	"units", "unset", "unshar", "useradd", "usermod", "users", "uuencode",
	"uudecode", "v", "vdir", "vi", "watch", "wc", "whereis", "which", "who",
	"whoami", "wget", "xargs", "yes",
}

var CppKeywords = []string{
	"signed", "break", "case", "catch", "class", "const", "__finally",
	"__exception", "__try", "const_cast", "__fastcall", "continue", "private",
	"public", "protected", "__declspec", "default", "delete", "deprecated",
	"dllexport", "dllimport", "do", "dynamic_cast", "else", "enum", "explicit",
	"extern", "if", "for", "friend", "goto", "inline", "mutable", "naked",
	"namespace", "new", "noinline", "noreturn", "nothrow", "register",
	"reinterpret_cast", "return", "selectany", "sizeof", "static",
	"static_cast", "struct", "switch", "template", "this", "thread", "throw",
	"true", "false", "try", "typedef", "typeid", "typename", "union", "using",
	"uuid", "virtual", "void", "volatile", "wchar_t", "while",
}

// CppFunctions are C standard library functions and macros.
var CppFunctions = []string{
	"assert", "isalnum", "isalpha", "iscntrl", "isdigit", "isgraph", "islower",
	"isprint", "ispunct", "isspace", "isupper", "isxdigit", "tolower",
	"toupper", "errno", "localeconv", "setlocale", "acos", "asin", "atan",
	"atan2", "ceil", "cos", "cosh", "exp", "fabs", "floor", "fmod", "frexp",
	"ldexp", "log", "log10", "modf", "pow", "sin", "sinh", "sqrt", "tan",
	"tanh", "jmp_buf", "longjmp", "setjmp", "raise", "signal", "sig_atomic_t",
	"va_arg", "va_end", "va_start", "clearerr", "fclose", "feof", "ferror",
	"fflush", "fgetc", "fgetpos", "fgets", "fopen", "fprintf", "fputc", "fputs",
	"fread", "freopen", "fscanf", "fseek", "fsetpos", "ftell", "fwrite", "getc",
	"getchar", "gets", "perror", "printf", "putc", "putchar", "puts", "remove",
	"rename", "rewind", "scanf", "setbuf", "setvbuf", "sprintf", "sscanf",
	"tmpfile", "tmpnam", "ungetc", "vfprintf", "vprintf", "vsprintf", "abort",
	"abs", "atexit", "atof", "atoi", "atol", "bsearch", "calloc", "div", "exit",
	"free", "getenv", "labs", "ldiv", "malloc", "mblen", "mbstowcs", "mbtowc",
	"qsort", "rand", "realloc", "srand", "strtod", "strtol", "strtoul",
	"system", "wcstombs", "wctomb", "memchr", "memcmp", "memcpy", "memmove",
	"memset", "strcat", "strchr", "strcmp", "strcoll", "strcpy", "strcspn",
	"strerror", "strlen", "strncat", "strncmp", "strncpy", "strpbrk", "strrchr",
	"strspn", "strstr", "strtok", "strxfrm", "asctime", "clock", "ctime",
	"difftime", "gmtime", "localtime", "mktime", "strftime", "time",
}

// CppDatatypes include the Windows SDK typedefs.
var CppDatatypes = []string{
	"ATOM", "BOOL", "BOOLEAN", "BYTE", "CHAR", "COLORREF", "DWORD", "DWORDLONG",
	"DWORD_PTR", "DWORD32", "DWORD64", "FLOAT", "HACCEL", "HALF_PTR", "HANDLE",
	"HBITMAP", "HBRUSH", "HCOLORSPACE", "HCONV", "HCONVLIST", "HCURSOR", "HDC",
	"HDDEDATA", "HDESK", "HDROP", "HDWP", "HENHMETAFILE", "HFILE", "HFONT",
	"HGDIOBJ", "HGLOBAL", "HHOOK", "HICON", "HINSTANCE", "HKEY", "HKL",
	"HLOCAL", "HMENU", "HMETAFILE", "HMODULE", "HMONITOR", "HPALETTE", "HPEN",
	"HRESULT", "HRGN", "HRSRC", "HSZ", "HWINSTA", "HWND", "INT", "INT_PTR",
	"INT32", "INT64", "LANGID", "LCID", "LCTYPE", "LGRPID", "LONG", "LONGLONG",
	"LONG_PTR", "LONG32", "LONG64", "LPARAM", "LPBOOL", "LPBYTE", "LPCOLORREF",
	"LPCSTR", "LPCTSTR", "LPCVOID", "LPCWSTR", "LPDWORD", "LPHANDLE", "LPINT",
	"LPLONG", "LPSTR", "LPTSTR", "LPVOID", "LPWORD", "LPWSTR", "LRESULT",
	"PBOOL", "PBOOLEAN", "PBYTE", "PCHAR", "PCSTR", "PCTSTR", "PCWSTR",
	"PDWORDLONG", "PDWORD_PTR", "PDWORD32", "PDWORD64", "PFLOAT", "PHALF_PTR",
	"PHANDLE", "PHKEY", "PINT", "PINT_PTR", "PINT32", "PINT64", "PLCID",
	"PLONG", "PLONGLONG", "PLONG_PTR", "PLONG32", "PLONG64", "POINTER_32",
	"POINTER_64", "PSHORT", "PSIZE_T", "PSSIZE_T", "PSTR", "PTBYTE", "PTCHAR",
	"PTSTR", "PUCHAR", "PUHALF_PTR", "PUINT", "PUINT_PTR", "PUINT32", "PUINT64",
	"PULONG", "PULONGLONG", "PULONG_PTR", "PULONG32", "PULONG64", "PUSHORT",
	"PVOID", "PWCHAR", "PWORD", "PWSTR", "SC_HANDLE", "SC_LOCK",
	"SERVICE_STATUS_HANDLE", "SHORT", "SIZE_T", "SSIZE_T", "TBYTE", "TCHAR",
	"UCHAR", "UHALF_PTR", "UINT", "UINT_PTR", "UINT32", "UINT64", "ULONG",
	"ULONGLONG", "ULONG_PTR", "ULONG32", "ULONG64", "USHORT", "USN", "VOID",
	"WCHAR", "WORD", "WPARAM", "char", "bool", "short", "int", "__int32",
	"__int64", "__int8", "__int16", "long", "float", "double", "__wchar_t",
	"clock_t", "_complex", "_dev_t", "_diskfree_t", "div_t", "ldiv_t",
	"_exception", "_EXCEPTION_POINTERS", "FILE", "_finddata_t",
	"_finddatai64_t", "_wfinddata_t", "_wfinddatai64_t", "__finddata64_t",
	"__wfinddata64_t", "_FPIEEE_RECORD", "fpos_t", "_HEAPINFO", "_HFILE",
	"lconv", "intptr_t", "jmp_buf", "mbstate_t", "_off_t", "_onexit_t", "_PNH",
	"ptrdiff_t", "_purecall_handler", "sig_atomic_t", "size_t", "_stat",
	"__stat64", "_stati64", "terminate_function", "time_t", "__time64_t",
	"_timeb", "__timeb64", "tm", "uintptr_t", "_utimbuf", "va_list", "wchar_t",
	"wctrans_t", "wctype_t", "wint_t",
}

var PythonKeywords = []string{
	"and", "assert", "break", "class", "continue", "def", "del", "elif", "else",
	"except", "exec", "finally", "for", "from", "global", "if", "import", "in",
	"is", "lambda", "not", "or", "pass", "print", "raise", "return", "try",
	"yield", "while",
}

var PythonBuiltins = []string{
	"__import__", "__init__", "__str__", "__iter__", "abs", "all", "any",
	"apply", "basestring", "bin", "bool", "buffer", "callable", "chr",
	"classmethod", "cmp", "coerce", "compile", "complex", "delattr", "dict",
	"dir", "divmod", "enumerate", "eval", "execfile", "file", "filter", "float",
	"format", "frozenset", "getattr", "globals", "hasattr", "hash", "help",
	"hex", "id", "input", "int", "intern", "isinstance", "issubclass", "iter",
	"len", "list", "locals", "long", "map", "max", "min", "next", "object",
	"oct", "open", "ord", "pow", "print", "property", "range", "raw_input",
	"reduce", "reload", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "type", "unichr",
	"unicode", "vars", "xrange", "zip",
}

var PythonValues = []string{
	"None", "True", "False", "self", "cls", "class_",
}

var CSharpKeywords = []string{
	"abstract", "event", "new", "struct", "as", "explicit", "null", "switch",
	"base", "extern", "object", "this", "bool", "false", "operator", "throw",
	"break", "finally", "out", "true", "byte", "fixed", "override", "try",
	"case", "float", "params", "typeof", "catch", "for", "private", "uint",
	"char", "foreach", "protected", "ulong", "checked", "goto", "public",
	"unchecked", "class", "if", "readonly", "unsafe", "const", "implicit",
	"ref", "ushort", "continue", "in", "return", "using", "decimal", "int",
	"sbyte", "virtual", "default", "interface", "sealed", "volatile",
	"delegate", "internal", "short", "void", "do", "is", "sizeof", "while",
	"double", "lock", "stackalloc", "else", "long", "static", "enum",
	"namespace", "string", "get", "partial", "set", "value", "where", "yield",
}

// CSharpClasses are frequently used framework types.
var CSharpClasses = []string{
	"DllImport", "StructLayout", "List", "Dictionary", "String", "Object",
	"Enum", "Array", "ArrayList", "BitArray", "CaseInsensitiveComparer",
	"CaseInsensitiveHashCodeProvider", "CollectionBase", "Comparer",
	"DictionaryBase", "Hashtable", "Queue", "ReadOnlyCollectionBase",
	"SortedList", "Stack", "StructuralComparisons",
}
