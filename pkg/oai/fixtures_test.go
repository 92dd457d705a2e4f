package oai

const getRecordEDM = `<?xml version="1.0" encoding="UTF-8"?>
<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <responseDate>2024-03-02T10:00:00Z</responseDate>
  <request verb="GetRecord">http://x.org/oai</request>
  <GetRecord>
    <record>
      <header>
        <identifier>oai:europeana:1</identifier>
        <datestamp>2024-03-01</datestamp>
        <setSpec>art</setSpec>
      </header>
      <metadata>
        <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
                 xmlns:dc="http://purl.org/dc/elements/1.1/"
                 xmlns:edm="http://www.europeana.eu/schemas/edm/">
          <rdf:Description rdf:about="http://data.europeana.eu/item/1">
            <dc:title>Mona Lisa</dc:title>
            <dc:creator>Leonardo</dc:creator>
          </rdf:Description>
        </rdf:RDF>
      </metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const getRecordLIDO = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier>oai:lido:7</identifier><datestamp>2024-01-01</datestamp></header>
      <metadata>
        <lido:lido xmlns:lido="http://www.lido-schema.org">
          <lido:lidoRecID lido:type="local">7</lido:lidoRecID>
        </lido:lido>
      </metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const getRecordDC = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier>oai:dc:3</identifier><datestamp>2024-01-01</datestamp></header>
      <metadata>
        <oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/"
                   xmlns:dc="http://purl.org/dc/elements/1.1/">
          <dc:title>Mona Lisa</dc:title>
          <dc:creator>Leonardo</dc:creator>
          <dc:creator>Workshop</dc:creator>
        </oai_dc:dc>
      </metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const getRecordDeleted = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header status="deleted"><identifier>oai:dc:4</identifier><datestamp>2024-01-01</datestamp></header>
    </record>
  </GetRecord>
</OAI-PMH>`

const getRecordEmptyMetadata = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <GetRecord>
    <record>
      <header><identifier>oai:dc:5</identifier><datestamp>2024-01-01</datestamp></header>
      <metadata>
      </metadata>
    </record>
  </GetRecord>
</OAI-PMH>`

const identifyResponse = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <Identify>
    <repositoryName>Test Repository</repositoryName>
    <baseURL>http://x.org/oai</baseURL>
    <protocolVersion>2.0</protocolVersion>
    <adminEmail>a@x.org</adminEmail>
    <adminEmail>b@x.org</adminEmail>
    <earliestDatestamp>2001-01-01</earliestDatestamp>
    <deletedRecord>persistent</deletedRecord>
    <granularity>YYYY-MM-DD</granularity>
  </Identify>
</OAI-PMH>`

const listPage1 = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <ListRecords>
    <record><header><identifier>r1</identifier></header><metadata><dc><title>one</title></dc></metadata></record>
    <record><header><identifier>r2</identifier></header><metadata><dc><title>two</title></dc></metadata></record>
    <resumptionToken cursor="0" completeListSize="3">page2</resumptionToken>
  </ListRecords>
</OAI-PMH>`

const listPage2 = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <ListRecords>
    <record><header><identifier>r3</identifier></header><metadata><dc><title>three</title></dc></metadata></record>
    <resumptionToken cursor="2" completeListSize="3"/>
  </ListRecords>
</OAI-PMH>`

const listSets = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <ListSets>
    <set><setSpec>art</setSpec><setName>Art</setName>
      <setDescription><oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:description>Paintings</dc:description></oai_dc:dc></setDescription>
    </set>
    <set><setSpec>maps</setSpec><setName>Maps</setName></set>
  </ListSets>
</OAI-PMH>`

const listFormats = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <ListMetadataFormats>
    <metadataFormat>
      <metadataPrefix>edm</metadataPrefix>
      <schema>http://www.europeana.eu/schemas/edm/EDM.xsd</schema>
      <metadataNamespace>http://www.europeana.eu/schemas/edm/</metadataNamespace>
    </metadataFormat>
  </ListMetadataFormats>
</OAI-PMH>`

const noRecordsMatch = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <error code="noRecordsMatch">nothing here</error>
</OAI-PMH>`

const idDoesNotExist = `<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
  <error code="idDoesNotExist">no such item</error>
</OAI-PMH>`
