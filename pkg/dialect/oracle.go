package dialect

func init() {
	Register(Oracle)
}

// Oracle is Oracle SQL and the parts of PL/SQL that show up in queries.
var Oracle = New("oracle").
	Extends(ANSI).
	Keywords(
		"MINUS", "CONNECT", "PRIOR", "START", "NOCYCLE", "SIBLINGS", "LEVEL", "ROWNUM",
		"ROWID", "SYSDATE", "SYSTIMESTAMP", "DUAL", "PIVOT", "UNPIVOT", "MODEL",
		"DECLARE", "EXCEPTION", "PROCEDURE", "FUNCTION", "PACKAGE", "BODY", "RETURN",
		"LOOP", "ELSIF", "PRAGMA", "EXECUTE", "IMMEDIATE", "SYNONYM", "TABLESPACE",
		"LONG", "BINARY_FLOAT", "BINARY_DOUBLE",
	).
	Functions(
		"NVL", "NVL2", "DECODE", "TO_CHAR", "TO_DATE", "TO_NUMBER", "TO_TIMESTAMP",
		"TRUNC", "ROUND", "SUBSTR", "INSTR", "LENGTH", "LISTAGG", "GREATEST", "LEAST",
		"ADD_MONTHS", "MONTHS_BETWEEN", "REGEXP_LIKE", "REGEXP_SUBSTR", "REGEXP_REPLACE",
		"VARCHAR2", "NVARCHAR2", "NUMBER", "RAW", "REPLACE",
	).
	Build()
